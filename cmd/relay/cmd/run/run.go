package run

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/relay/cmd/application"
	"github.com/agentstation/relay/pkg/adapter"
	"github.com/agentstation/relay/pkg/chat"
	"github.com/agentstation/relay/pkg/constants"
	"github.com/agentstation/relay/pkg/errors"
	"github.com/agentstation/relay/pkg/logging"
)

// Delivery is one message a user received during the demo.
type Delivery struct {
	User    string `json:"user" yaml:"user"`
	Seq     int    `json:"seq" yaml:"seq"`
	Message string `json:"message" yaml:"message"`
}

// Result is what a demo run leaves behind.
type Result struct {
	// ID correlates the run's diagnostic log lines.
	ID string

	// Remaining lists the chat members after the last user left.
	Remaining []string

	// Transcript holds every delivery grouped by user in join order.
	Transcript []Delivery
}

// Play runs the application's demo script against its stdout:
// log the start line, print every adapted source, greet all users,
// let the last user leave, send the farewell, log the finish line.
//
// The whole script is validated before anything is written, so a bad
// format or user name produces no partial output. Diagnostics go to the
// logger carried by ctx, falling back to the application's.
func Play(ctx context.Context, app application.Application) (*Result, error) {
	script := app.Script()
	out := app.Stdout()
	runID := uuid.New().String()
	runLogger := logging.FromContextOr(ctx, app.Logger()).With().Str("run_id", runID).Logger()
	logger := &runLogger

	adapters, err := buildAdapters(script.Formats)
	if err != nil {
		return nil, err
	}
	members, err := buildMembers(script.Users, out)
	if err != nil {
		return nil, err
	}

	process := app.Process()
	process.Log(constants.StartMessage)

	for _, a := range adapters {
		logger.Debug().Stringer("kind", a.Kind()).Msg("Printing adapted content")
		fmt.Fprintln(out, a.Content())
	}

	room := chat.New(chat.WithOutput(out), chat.WithLogger(logger))
	for _, m := range members {
		room.Subscribe(m)
	}

	room.Broadcast(script.Greeting)

	leaving := members[len(members)-1]
	room.Unsubscribe(leaving)
	logger.Debug().Str("user", leaving.Name()).Msg("User left the chat")

	room.Broadcast(script.Farewell)

	process.Log(constants.FinishMessage)

	result := newResult(room, members)
	result.ID = runID
	return result, nil
}

// buildAdapters creates one adapter per format, in order.
func buildAdapters(formats []string) ([]*adapter.Adapter, error) {
	if len(formats) == 0 {
		return nil, errors.NewValidationError("formats", formats, "at least one format is required")
	}
	adapters := make([]*adapter.Adapter, 0, len(formats))
	for _, format := range formats {
		a, err := adapter.NewFromKind(format)
		if err != nil {
			return nil, errors.WrapResource("create", "adapter", format, err)
		}
		adapters = append(adapters, a)
	}
	return adapters, nil
}

// buildMembers creates a recording user per name, in order.
func buildMembers(names []string, out io.Writer) ([]*chat.Recorder, error) {
	if len(names) == 0 {
		return nil, errors.NewValidationError("users", names, "at least one user is required")
	}
	members := make([]*chat.Recorder, 0, len(names))
	for _, name := range names {
		user, err := chat.NewUser(name, out)
		if err != nil {
			return nil, errors.WrapResource("create", "user", name, err)
		}
		members = append(members, chat.NewRecorder("", user))
	}
	return members, nil
}

func newResult(room *chat.Chat, members []*chat.Recorder) *Result {
	result := &Result{}
	for _, sub := range room.Subscribers() {
		result.Remaining = append(result.Remaining, sub.Name())
	}
	for _, m := range members {
		for i, msg := range m.Messages() {
			result.Transcript = append(result.Transcript, Delivery{
				User:    m.Name(),
				Seq:     i + 1,
				Message: msg,
			})
		}
	}
	return result
}

// logResult records a summary of the run at debug level.
func logResult(logger *zerolog.Logger, result *Result) {
	logger.Debug().
		Str("run_id", result.ID).
		Strs("remaining", result.Remaining).
		Int("deliveries", len(result.Transcript)).
		Msg("Demo finished")
}
