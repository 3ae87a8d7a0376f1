// Package constraint provides pass/fail predicates for input pipelines.
//
// Every constraint implements Name, Check and Message, which makes it an
// input.Constraint for the matching value type. Constraints that are cheap
// and structural (Length) carry a positive default priority, and the ones
// that run a full grammar (Email, URI) carry a negative one, so they order
// themselves sensibly without explicit priorities.
//
// Messages are text.Text values with keys under "constraint.", rendered
// lazily by the input package. English fallbacks are built in; other
// languages come from text.Default or a custom catalog.
package constraint

// Default priorities.
const (
	PriorityStructural = 100
	PriorityDefault    = 0
	PrioritySemantic   = -10
)
