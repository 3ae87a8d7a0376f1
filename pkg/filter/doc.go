// Package filter provides value transformations for input pipelines.
//
// A filter implements Name, Filter and Message and so satisfies
// input.Filter for its value type. Filters return false only when they
// cannot process a value (for example an invalid normalization form);
// most of them always succeed.
//
//	in := input.Must(types.Text())
//	in.AddFilter(filter.Trim{}).AddFilter(filter.Lowercase{})
//	in.SetValue("  Hello ") // stored as "hello"
//
// Filters default to priority 0. Attach them with input.WithPriority when
// they must run before a constraint of the same tier.
package filter
