package chat

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/agentstation/relay/pkg/errors"
)

// Subscriber is an interface for message consumers.
// Chats compare subscribers with ==, so implementations should be pointers.
type Subscriber interface {
	// Name identifies the subscriber in rendered output.
	Name() string

	// Receive delivers a broadcast message. It must not block.
	Receive(message string)
}

// User is a chat member that renders every message it receives.
type User struct {
	name string
	out  io.Writer
}

// NewUser creates a user writing received messages to w (stdout when nil).
func NewUser(name string, w io.Writer) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewValidationError("name", name, "cannot be empty")
	}
	if w == nil {
		w = os.Stdout
	}
	return &User{name: name, out: w}, nil
}

// Name returns the user's name, empty for a nil user.
func (u *User) Name() string {
	if u == nil {
		return ""
	}
	return u.name
}

// Receive prints the message tagged with the user's name.
func (u *User) Receive(message string) {
	fmt.Fprintf(u.out, "%s отримав повідомлення: %s\n", u.name, message)
}

// Recorder keeps every message it receives and optionally forwards it to
// another subscriber.
type Recorder struct {
	name     string
	next     Subscriber
	mu       sync.Mutex
	messages []string
}

// NewRecorder creates a recorder. When next is non-nil the recorder takes
// its name and forwards each message to it after recording.
func NewRecorder(name string, next Subscriber) *Recorder {
	if isNil(next) {
		next = nil
	}
	if next != nil && name == "" {
		name = next.Name()
	}
	return &Recorder{name: name, next: next}
}

// Name returns the recorder's name, empty for a nil recorder.
func (r *Recorder) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Receive records the message and forwards it.
func (r *Recorder) Receive(message string) {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Receive(message)
	}
}

// Messages returns a copy of the received messages, oldest first.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]string, len(r.messages))
	copy(result, r.messages)
	return result
}
