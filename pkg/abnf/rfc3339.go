package abnf

import "github.com/dmitrymomot/kit/pkg/enum"

const (
	dtFullYear   = `[0-9]{4}`
	dtMonth      = `(?:0[1-9]|1[0-2])`
	dtMday       = `(?:0[1-9]|[12][0-9]|3[01])`
	dtHour       = `(?:[01][0-9]|2[0-3])`
	dtMinute     = `[0-5][0-9]`
	dtSecond     = `(?:[0-5][0-9]|60)`
	dtSecfrac    = `\.[0-9]+`
	dtNumOffset  = `[+-]` + dtHour + `:` + dtMinute
	dtOffset     = `(?:[Zz]|` + dtNumOffset + `)`
	dtPartial    = dtHour + `:` + dtMinute + `:` + dtSecond + `(?:` + dtSecfrac + `)?`
	dtFullDate   = dtFullYear + `-` + dtMonth + `-` + dtMday
	dtFullTime   = dtPartial + dtOffset
	dtDateTimeRE = dtFullDate + `[Tt]` + dtFullTime
)

// RFC3339 holds the Internet date/time format (RFC 3339, section 5.6).
var RFC3339 = enum.MustRegister(enum.New("rfc3339",
	enum.Entry[string]{Name: "date-fullyear", Value: dtFullYear},
	enum.Entry[string]{Name: "date-month", Value: dtMonth},
	enum.Entry[string]{Name: "date-mday", Value: dtMday},
	enum.Entry[string]{Name: "time-hour", Value: dtHour},
	enum.Entry[string]{Name: "time-minute", Value: dtMinute},
	enum.Entry[string]{Name: "time-second", Value: dtSecond},
	enum.Entry[string]{Name: "time-secfrac", Value: dtSecfrac},
	enum.Entry[string]{Name: "time-numoffset", Value: dtNumOffset},
	enum.Entry[string]{Name: "time-offset", Value: dtOffset},
	enum.Entry[string]{Name: "partial-time", Value: dtPartial},
	enum.Entry[string]{Name: "full-date", Value: dtFullDate},
	enum.Entry[string]{Name: "full-time", Value: dtFullTime},
	enum.Entry[string]{Name: "date-time", Value: dtDateTimeRE},
))
