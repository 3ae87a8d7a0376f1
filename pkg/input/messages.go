package input

import "github.com/dmitrymomot/kit/pkg/text"

// Built-in messages of the pipeline itself.
var (
	MsgInvalid  = text.New("input.invalid", "invalid value")
	MsgRequired = text.New("input.required", "value is required")
)
