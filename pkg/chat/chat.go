// Package chat provides a publish/subscribe chat room.
//
// A Chat keeps its subscribers in the order they joined and delivers each
// broadcast to all of them synchronously, in that order. Joining twice and
// leaving without having joined are silent no-ops. So are nil subscribers,
// including nil pointers wrapped in the interface.
//
// Example usage:
//
//	room := chat.New()
//	olena, _ := chat.NewUser("Олена", os.Stdout)
//	room.Subscribe(olena)
//	room.Broadcast("Привіт!")
package chat

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/relay/pkg/logging"
)

// AnnouncePrefix starts the line a chat prints before delivering a message.
const AnnouncePrefix = "Повідомлення в чаті:"

// Chat manages message distribution to its subscribers. The zero value
// is an empty chat announcing on stdout without diagnostics.
type Chat struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	out         io.Writer
	logger      *zerolog.Logger
}

// Option configures a Chat.
type Option func(*Chat)

// WithOutput sets where broadcast announcements are written.
func WithOutput(w io.Writer) Option {
	return func(c *Chat) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Chat) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty chat.
func New(opts ...Option) *Chat {
	c := &Chat{
		subscribers: make([]Subscriber, 0),
		out:         os.Stdout,
		logger:      &logging.Nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe adds sub unless it is already subscribed.
func (c *Chat) Subscribe(sub Subscriber) {
	if isNil(sub) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	logger := c.log()

	if c.indexOf(sub) >= 0 {
		logger.Debug().
			Str("subscriber", sub.Name()).
			Msg("Subscriber already registered")
		return
	}
	c.subscribers = append(c.subscribers, sub)
	logger.Debug().
		Str("subscriber", sub.Name()).
		Int("total_subscribers", len(c.subscribers)).
		Msg("Subscriber registered")
}

// Unsubscribe removes sub if present, keeping the order of the others.
func (c *Chat) Unsubscribe(sub Subscriber) {
	if isNil(sub) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	logger := c.log()

	i := c.indexOf(sub)
	if i < 0 {
		logger.Debug().
			Str("subscriber", sub.Name()).
			Msg("Subscriber not registered")
		return
	}
	c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
	logger.Debug().
		Str("subscriber", sub.Name()).
		Int("total_subscribers", len(c.subscribers)).
		Msg("Subscriber unregistered")
}

// Broadcast announces message and then delivers it to every current
// subscriber in subscription order. Changes made by subscribers while
// receiving apply from the next broadcast.
func (c *Chat) Broadcast(message string) {
	subs := c.Subscribers()

	fmt.Fprintf(c.output(), "%s %s\n", AnnouncePrefix, message)
	for _, sub := range subs {
		sub.Receive(message)
	}

	c.log().Debug().
		Int("subscribers", len(subs)).
		Msg("Message broadcasted")
}

// Count returns the current number of subscribers.
func (c *Chat) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subscribers)
}

// Subscribers returns a snapshot of the subscribers in subscription order.
func (c *Chat) Subscribers() []Subscriber {
	c.mu.RLock()
	defer c.mu.RUnlock()

	subs := make([]Subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	return subs
}

// indexOf finds sub by identity. Callers hold c.mu.
func (c *Chat) indexOf(sub Subscriber) int {
	for i, s := range c.subscribers {
		if s == sub {
			return i
		}
	}
	return -1
}

func (c *Chat) output() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

func (c *Chat) log() *zerolog.Logger {
	if c.logger == nil {
		return &logging.Nop
	}
	return c.logger
}

// isNil reports whether sub is nil or a nil value of a nillable type.
func isNil(sub Subscriber) bool {
	if sub == nil {
		return true
	}
	switch v := reflect.ValueOf(sub); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
