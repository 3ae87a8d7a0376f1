package input_test

import (
	"fmt"
	"slices"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/kit/pkg/input"
	"github.com/dmitrymomot/kit/pkg/text"
)

func TestInput_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("nil is accepted exactly when the input is nullable", prop.ForAll(
		func(nullable bool) bool {
			in := input.Must[int](newNumberProto(), input.WithNullable(nullable))
			in.AddConstraint(positive())
			ok := in.SetValue(nil)
			return ok == nullable && in.IsNull() == nullable
		},
		gen.Bool(),
	))

	properties.Property("modifiers run in descending priority, ties in insertion order", prop.ForAll(
		func(priorities []int) bool {
			var got []string
			in := input.Must[int](newNumberProto())
			for i, p := range priorities {
				name := fmt.Sprintf("m%d", i)
				in.AddConstraint(input.ConstraintFunc(name, text.Plain(name), func(int) bool {
					got = append(got, name)
					return true
				}), input.WithPriority(p))
			}
			if !in.SetValue(1) {
				return false
			}

			idx := make([]int, len(priorities))
			for i := range idx {
				idx[i] = i
			}
			sort.SliceStable(idx, func(a, b int) bool { return priorities[idx[a]] > priorities[idx[b]] })
			want := make([]string, len(idx))
			for i, j := range idx {
				want[i] = fmt.Sprintf("m%d", j)
			}
			return slices.Equal(got, want) && slices.Equal(in.Modifiers(), want)
		},
		gen.SliceOf(gen.IntRange(-3, 3)),
	))

	properties.Property("a rejected value never replaces the stored one", prop.ForAll(
		func(first, second int) bool {
			in := input.Must[int](newNumberProto())
			in.AddConstraint(positive())
			in.SetValue(first)
			before, beforeErr := in.Value()
			if in.SetValue(second) {
				return second > 0 && in.MustValue() == second
			}
			after, afterErr := in.Value()
			return after == before && (afterErr == nil) == (beforeErr == nil)
		},
		gen.IntRange(-100, 100),
		gen.IntRange(-100, 100),
	))

	properties.Property("only the first failing tier reports", prop.ForAll(
		func(high, low int) bool {
			in := input.Must[int](newNumberProto())
			in.AddConstraint(input.ConstraintFunc("high", text.Plain("high"), func(int) bool { return false }), input.WithPriority(high))
			in.AddConstraint(input.ConstraintFunc("low", text.Plain("low"), func(int) bool { return false }), input.WithPriority(low))
			if in.SetValue(1) {
				return false
			}
			msgs := in.Error().Messages(text.Options{})
			switch {
			case high > low:
				return slices.Equal(msgs, []string{"high"})
			case high < low:
				return slices.Equal(msgs, []string{"low"})
			default:
				return slices.Equal(msgs, []string{"high", "low"})
			}
		},
		gen.IntRange(-5, 5),
		gen.IntRange(-5, 5),
	))

	properties.TestingRun(t)
}
