package input

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/kit/pkg/text"
)

// Messenger renders one failure message on demand.
type Messenger func(opts text.Options) string

// Error is an immutable snapshot of a rejected value.
type Error struct {
	value      any
	messengers []Messenger
}

func newError(value any, messengers ...Messenger) *Error {
	return &Error{value: value, messengers: messengers}
}

// Value returns the raw value that was rejected.
func (e *Error) Value() any {
	return e.value
}

// Len returns the number of recorded failures.
func (e *Error) Len() int {
	return len(e.messengers)
}

// Messages renders every failure, dropping empty and repeated messages.
func (e *Error) Messages(opts text.Options) []string {
	seen := make(map[string]struct{}, len(e.messengers))
	out := make([]string, 0, len(e.messengers))
	for _, m := range e.messengers {
		s := m(opts)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Message joins Messages with "; ".
func (e *Error) Message(opts text.Options) string {
	return strings.Join(e.Messages(opts), "; ")
}

// Error renders English user-level messages.
func (e *Error) Error() string {
	if msg := e.Message(text.Options{}); msg != "" {
		return msg
	}
	return MsgInvalid.String()
}

// stageMessenger builds the closure recorded for a failing stage.
// At technical level the stage name is prefixed; at internal level the
// priority and raw value are appended as well.
func stageMessenger(kind, name string, priority int, msg text.Text, raw any) Messenger {
	if msg.IsZero() {
		msg = MsgInvalid
	}
	return func(opts text.Options) string {
		s := opts.Render(msg)
		switch opts.Level {
		case text.LevelTechnical:
			return name + ": " + s
		case text.LevelInternal:
			return fmt.Sprintf("%s %s (priority %d) rejected %#v: %s", kind, name, priority, raw, s)
		default:
			return s
		}
	}
}
