package constraint

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/kit/pkg/text"
)

// UUIDVersion requires one of the listed UUID versions.
type UUIDVersion struct {
	Versions []int `mapstructure:"versions"`
}

func (UUIDVersion) Name() string { return "version" }

func (c UUIDVersion) Check(id uuid.UUID) bool {
	if len(c.Versions) == 0 {
		return true
	}
	return slices.Contains(c.Versions, int(id.Version()))
}

func (c UUIDVersion) Message() text.Text {
	parts := make([]string, len(c.Versions))
	for i, v := range c.Versions {
		parts[i] = strconv.Itoa(v)
	}
	return text.New("constraint.uuid.version", "must be a UUID of version %{versions}", "versions", strings.Join(parts, ", "))
}

// UUIDNotNil rejects the all-zero UUID.
type UUIDNotNil struct{}

func (UUIDNotNil) Name() string { return "not_nil" }

func (UUIDNotNil) Check(id uuid.UUID) bool {
	return id != uuid.Nil
}

func (UUIDNotNil) Message() text.Text {
	return text.New("constraint.uuid.not_nil", "must not be the nil UUID")
}
