// Package input implements the typed value pipeline: evaluate, constrain,
// filter.
//
// An Input wraps a Prototype that defines the base semantics of a value
// type: how a raw value is coerced and which modifiers can be built by
// name. Modifiers (constraints and filters) are attached with a priority.
// SetValue runs the pipeline:
//
//  1. a nil raw value is accepted only by nullable inputs;
//  2. the prototype evaluates and coerces the raw value;
//  3. before-evaluators run;
//  4. modifiers run in descending priority, ties in insertion order;
//  5. after-evaluators run.
//
// Every stage attached at the same priority forms a tier. All stages in a
// tier run, and filters feed their output to the next stage. When any stage
// in a tier fails, the pipeline stops after that tier. Higher tiers
// therefore act as cheap guards for more expensive lower tiers:
//
//	in := input.Must(types.Text())
//	in.AddConstraint(constraint.NewLength(5, 10))        // priority 100
//	in.AddConstraint(constraint.Email{})                 // priority -10
//	if !in.SetValue(raw) {
//	    msg := in.ErrorMessage(text.Options{Lang: "de", Translator: text.Default()})
//	}
//
// A failed run records an *Error: the rejected raw value and one Messenger
// per failing stage. Messengers are closures, so messages are rendered only
// when asked for, in the language and at the Level the caller requests.
//
// Inputs are not safe for concurrent use.
package input
