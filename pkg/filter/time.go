package filter

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/kit/pkg/text"
)

// UTC converts a time to UTC.
type UTC struct{}

func (UTC) Name() string                         { return "utc" }
func (UTC) Message() text.Text                   { return msgInvalid }
func (UTC) Filter(t time.Time) (time.Time, bool) { return t.UTC(), true }

// TruncateTime rounds a time down to a multiple of Precision since the
// zero time.
type TruncateTime struct {
	Precision time.Duration `mapstructure:"precision"`
}

func (f TruncateTime) Validate() error {
	if f.Precision <= 0 {
		return fmt.Errorf("%w: precision must be positive", ErrInvalidBounds)
	}
	return nil
}

func (TruncateTime) Name() string       { return "truncate" }
func (TruncateTime) Message() text.Text { return msgInvalid }

func (f TruncateTime) Filter(t time.Time) (time.Time, bool) {
	return t.Truncate(f.Precision), true
}
