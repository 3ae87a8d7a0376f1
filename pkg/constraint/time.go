package constraint

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/kit/pkg/text"
)

// TimeRange bounds a time inclusively. Zero bounds are open.
type TimeRange struct {
	After  time.Time `mapstructure:"after"`
	Before time.Time `mapstructure:"before"`
}

func (c TimeRange) Validate() error {
	if !c.After.IsZero() && !c.Before.IsZero() && c.Before.Before(c.After) {
		return fmt.Errorf("%w: before %s < after %s", ErrInvalidBounds, c.Before, c.After)
	}
	return nil
}

func (TimeRange) Name() string { return "range" }

func (c TimeRange) Check(t time.Time) bool {
	if !c.After.IsZero() && t.Before(c.After) {
		return false
	}
	if !c.Before.IsZero() && t.After(c.Before) {
		return false
	}
	return true
}

func (c TimeRange) Message() text.Text {
	const layout = time.RFC3339
	switch {
	case !c.After.IsZero() && !c.Before.IsZero():
		return text.New("constraint.time.between", "must be between %{after} and %{before}",
			"after", c.After.Format(layout), "before", c.Before.Format(layout))
	case !c.After.IsZero():
		return text.New("constraint.time.after", "must not be before %{after}", "after", c.After.Format(layout))
	case !c.Before.IsZero():
		return text.New("constraint.time.before", "must not be after %{before}", "before", c.Before.Format(layout))
	default:
		return text.New("constraint.time.invalid", "is out of range")
	}
}
