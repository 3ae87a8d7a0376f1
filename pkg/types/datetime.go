package types

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/kit/pkg/abnf"
	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/filter"
	"github.com/dmitrymomot/kit/pkg/text"
)

var MsgDateTime = text.New("types.datetime", "must be a date and time in RFC 3339 format")

// DateTime returns the time.Time prototype. It accepts time.Time values,
// RFC 3339 date-time strings and unix timestamps in seconds, which are
// read as UTC.
func DateTime() *Prototype[time.Time] {
	p := NewPrototype("datetime", MsgDateTime, coerceDateTime)
	p.Register("range", constraintOf[time.Time, constraint.TimeRange]()).
		Register("utc", filterOf[time.Time, filter.UTC]()).
		Register("truncate", filterOf[time.Time, filter.TruncateTime]())
	return p
}

func coerceDateTime(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		return *v, true
	case string:
		return parseDateTime(v)
	case []byte:
		return parseDateTime(string(v))
	case bool:
		return time.Time{}, false
	}
	sec, err := cast.ToInt64E(raw)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

func parseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !abnf.Match(abnf.RFC3339, "date-time", s) {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, strings.ToUpper(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
