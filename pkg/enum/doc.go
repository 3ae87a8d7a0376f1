// Package enum provides closed sets of named scalar constants with
// name ↔ value lookup.
//
// An Enumeration keeps its entries in declaration order. The lookup tables
// are built lazily on first use and retained for the lifetime of the
// enumeration, so declaring large tables at package level costs nothing
// until they are queried.
//
//	var Color = enum.New("color",
//	    enum.Entry[int]{Name: "RED", Value: 1},
//	    enum.Entry[int]{Name: "GREEN", Value: 2},
//	)
//
//	v, err := Color.Value("GREEN") // 2
//	n, err := Color.Name(1)        // "RED"
//
// When several names share a value, Name returns the first declared one.
// Duplicate names are a programming error and make New panic.
//
// Enumerations may be registered in a process-wide registry so tooling can
// discover them by name (see Register and Lookup).
package enum
