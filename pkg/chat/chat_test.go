package chat

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/relay/pkg/logging"
)

// delivery records who received what, in call order.
type delivery struct {
	subscriber string
	message    string
}

// journal collects deliveries from several mock subscribers.
type journal struct {
	mu      sync.Mutex
	entries []delivery
}

func (j *journal) add(name, message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, delivery{subscriber: name, message: message})
}

func (j *journal) all() []delivery {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]delivery, len(j.entries))
	copy(out, j.entries)
	return out
}

// mockSubscriber is a mock subscriber for testing.
type mockSubscriber struct {
	name    string
	journal *journal
}

func newMockSubscriber(name string, j *journal) *mockSubscriber {
	return &mockSubscriber{name: name, journal: j}
}

func (m *mockSubscriber) Name() string { return m.name }

func (m *mockSubscriber) Receive(message string) {
	m.journal.add(m.name, message)
}

func newTestChat() (*Chat, *bytes.Buffer) {
	var out bytes.Buffer
	return New(WithOutput(&out), WithLogger(logging.NewNopLogger())), &out
}

// TestChat_New tests chat creation.
func TestChat_New(t *testing.T) {
	c := New()
	require.NotNil(t, c)
	assert.NotNil(t, c.subscribers)
	assert.NotNil(t, c.out)
	assert.NotNil(t, c.logger)
	assert.Equal(t, 0, c.Count())
}

func TestChat_ZeroValue(t *testing.T) {
	var c Chat
	assert.Same(t, os.Stdout, c.output())
	assert.NotNil(t, c.log())

	a := newMockSubscriber("A", &journal{})
	assert.NotPanics(t, func() {
		c.Subscribe(a)
		c.Unsubscribe(newMockSubscriber("B", &journal{}))
	})
	assert.Equal(t, []Subscriber{a}, c.Subscribers())

	c.Unsubscribe(a)
	assert.Equal(t, 0, c.Count())
}

func TestChat_Subscribe(t *testing.T) {
	t.Run("adds in order", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		a, b := newMockSubscriber("A", j), newMockSubscriber("B", j)

		c.Subscribe(a)
		c.Subscribe(b)

		assert.Equal(t, []Subscriber{a, b}, c.Subscribers())
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		c, _ := newTestChat()
		a := newMockSubscriber("A", &journal{})

		c.Subscribe(a)
		c.Subscribe(a)

		assert.Equal(t, 1, c.Count())
	})

	t.Run("same name different identity", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}

		c.Subscribe(newMockSubscriber("A", j))
		c.Subscribe(newMockSubscriber("A", j))

		assert.Equal(t, 2, c.Count())
	})

	t.Run("nil is ignored", func(t *testing.T) {
		c, _ := newTestChat()
		c.Subscribe(nil)
		assert.Equal(t, 0, c.Count())
	})

	t.Run("typed nil is ignored", func(t *testing.T) {
		c, out := newTestChat()
		var u *User
		var r *Recorder

		assert.NotPanics(t, func() {
			c.Subscribe(u)
			c.Subscribe(r)
			c.Broadcast("hi")
		})
		assert.Equal(t, 0, c.Count())
		assert.Equal(t, AnnouncePrefix+" hi\n", out.String())
	})
}

func TestChat_Unsubscribe(t *testing.T) {
	t.Run("absent is a no-op", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		a := newMockSubscriber("A", j)
		c.Subscribe(a)

		c.Unsubscribe(newMockSubscriber("B", j))
		c.Unsubscribe(nil)
		var u *User
		assert.NotPanics(t, func() { c.Unsubscribe(u) })

		assert.Equal(t, []Subscriber{a}, c.Subscribers())
	})

	t.Run("keeps order of the rest", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		a, b, d := newMockSubscriber("A", j), newMockSubscriber("B", j), newMockSubscriber("D", j)
		c.Subscribe(a)
		c.Subscribe(b)
		c.Subscribe(d)

		c.Unsubscribe(b)

		assert.Equal(t, []Subscriber{a, d}, c.Subscribers())
	})

	t.Run("resubscribe goes to the end", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		a, b := newMockSubscriber("A", j), newMockSubscriber("B", j)
		c.Subscribe(a)
		c.Subscribe(b)

		c.Unsubscribe(a)
		c.Subscribe(a)

		assert.Equal(t, []Subscriber{b, a}, c.Subscribers())
	})
}

func TestChat_Broadcast(t *testing.T) {
	t.Run("delivers in subscription order", func(t *testing.T) {
		c, out := newTestChat()
		j := &journal{}
		c.Subscribe(newMockSubscriber("A", j))
		c.Subscribe(newMockSubscriber("B", j))

		c.Broadcast("Hello")

		assert.Equal(t, []delivery{{"A", "Hello"}, {"B", "Hello"}}, j.all())
		assert.Equal(t, "Повідомлення в чаті: Hello\n", out.String())
	})

	t.Run("no subscribers still announces", func(t *testing.T) {
		c, out := newTestChat()
		c.Broadcast("echo")
		assert.Equal(t, "Повідомлення в чаті: echo\n", out.String())
	})

	t.Run("removed subscriber misses later messages", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		a, b := newMockSubscriber("A", j), newMockSubscriber("B", j)
		c.Subscribe(a)
		c.Subscribe(b)

		c.Unsubscribe(b)
		c.Broadcast("Only A")

		assert.Equal(t, []delivery{{"A", "Only A"}}, j.all())
	})

	t.Run("repeated broadcast delivers again", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		c.Subscribe(newMockSubscriber("A", j))

		c.Broadcast("ping")
		c.Broadcast("ping")

		assert.Len(t, j.all(), 2)
	})

	t.Run("subscribe during receive applies next time", func(t *testing.T) {
		c, _ := newTestChat()
		j := &journal{}
		late := newMockSubscriber("late", j)
		inviter := &inviteSubscriber{chat: c, guest: late, journal: j}
		c.Subscribe(inviter)

		c.Broadcast("first")
		c.Broadcast("second")

		assert.Equal(t, []delivery{
			{"inviter", "first"},
			{"inviter", "second"},
			{"late", "second"},
		}, j.all())
	})
}

// inviteSubscriber subscribes a guest from inside Receive.
type inviteSubscriber struct {
	chat    *Chat
	guest   Subscriber
	journal *journal
}

func (s *inviteSubscriber) Name() string { return "inviter" }

func (s *inviteSubscriber) Receive(message string) {
	s.journal.add(s.Name(), message)
	s.chat.Subscribe(s.guest)
}

// TestChat_Scenario walks through the two-member chat from start to finish.
func TestChat_Scenario(t *testing.T) {
	var out bytes.Buffer
	c := New(WithOutput(&out))

	olena, err := NewUser("Olena", &out)
	require.NoError(t, err)
	ivan, err := NewUser("Ivan", &out)
	require.NoError(t, err)

	c.Subscribe(olena)
	c.Subscribe(ivan)
	c.Broadcast("Hi everyone")
	c.Unsubscribe(ivan)
	c.Broadcast("Only Olena sees this")

	want := strings.Join([]string{
		"Повідомлення в чаті: Hi everyone",
		"Olena отримав повідомлення: Hi everyone",
		"Ivan отримав повідомлення: Hi everyone",
		"Повідомлення в чаті: Only Olena sees this",
		"Olena отримав повідомлення: Only Olena sees this",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
	assert.Equal(t, []Subscriber{olena}, c.Subscribers())
}

func TestChat_Logging(t *testing.T) {
	tl := logging.NewTestLogger(t)
	var out bytes.Buffer
	c := New(WithOutput(&out), WithLogger(tl.Logger))
	a := newMockSubscriber("A", &journal{})

	c.Subscribe(a)
	c.Subscribe(a)
	c.Unsubscribe(a)
	c.Unsubscribe(a)
	c.Broadcast("quiet")

	assert.True(t, tl.ContainsAll(
		"Subscriber registered",
		"Subscriber already registered",
		"Subscriber unregistered",
		"Subscriber not registered",
		"Message broadcasted",
	), tl.Output())
	assert.Equal(t, 5, tl.Count())
}

func TestChat_ConcurrentAccess(t *testing.T) {
	c := New(WithOutput(io.Discard), WithLogger(logging.NewNopLogger()))
	j := &journal{}
	subs := make([]*mockSubscriber, 20)
	for i := range subs {
		subs[i] = newMockSubscriber(string(rune('A'+i)), j)
	}

	var wg sync.WaitGroup
	for _, s := range subs {
		wg.Add(1)
		go func(s *mockSubscriber) {
			defer wg.Done()
			c.Subscribe(s)
			c.Broadcast("tick")
		}(s)
	}
	wg.Wait()

	assert.Equal(t, len(subs), c.Count())
}
