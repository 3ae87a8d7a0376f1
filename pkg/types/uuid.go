package types

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/kit/pkg/constraint"
	"github.com/dmitrymomot/kit/pkg/text"
)

var MsgUUID = text.New("types.uuid", "must be a valid UUID")

// UUID returns the uuid.UUID prototype. It accepts UUID values, their
// string forms and 16-byte slices.
func UUID() *Prototype[uuid.UUID] {
	p := NewPrototype("uuid", MsgUUID, coerceUUID)
	p.Register("version", constraintOf[uuid.UUID, constraint.UUIDVersion]()).
		Register("not_nil", constraintOf[uuid.UUID, constraint.UUIDNotNil]())
	return p
}

func coerceUUID(raw any) (uuid.UUID, bool) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v, true
	case [16]byte:
		return uuid.UUID(v), true
	case []byte:
		if len(v) == 16 {
			id, err := uuid.FromBytes(v)
			return id, err == nil
		}
		id, err := uuid.ParseBytes(v)
		return id, err == nil
	case string:
		id, err := uuid.Parse(v)
		return id, err == nil
	}
	return uuid.Nil, false
}
