package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// ProcessTag prefixes every line written by a ProcessLogger.
const ProcessTag = "[ЛОГ]:"

// ProcessLogger writes tagged status lines such as program start and
// finish. Lines are emitted without a level so the global level filter
// never drops them.
type ProcessLogger struct {
	logger zerolog.Logger
}

var (
	processOnce   sync.Once
	processLogger atomic.Pointer[ProcessLogger]
)

// NewProcessLogger creates a ProcessLogger writing "[ЛОГ]: <message>" lines to w.
func NewProcessLogger(w io.Writer) *ProcessLogger {
	if w == nil {
		w = os.Stdout
	}
	writer := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
		FormatMessage: func(i any) string {
			return fmt.Sprintf("%s %v", ProcessTag, i)
		},
	}
	return &ProcessLogger{logger: zerolog.New(writer)}
}

// Log writes message with the process tag.
func (p *ProcessLogger) Log(message string) {
	p.logger.Log().Msg(message)
}

// Process returns the process-wide ProcessLogger, creating one that writes
// to stdout on first use. Concurrent first calls observe the same instance.
func Process() *ProcessLogger {
	processOnce.Do(func() {
		processLogger.CompareAndSwap(nil, NewProcessLogger(os.Stdout))
	})
	return processLogger.Load()
}

// SetProcess installs p as the process-wide ProcessLogger. Call it during
// startup, before any goroutine touches Process. A nil p is ignored.
func SetProcess(p *ProcessLogger) {
	if p == nil {
		return
	}
	processLogger.Store(p)
}
