package property

import (
	"fmt"
	"strings"
)

// Mode is a set of access capabilities.
type Mode uint8

const (
	modeRead Mode = 1 << iota
	modeWrite
	modeOnce
)

const (
	None      Mode = 0
	ReadOnly       = modeRead
	WriteOnly      = modeWrite
	ReadWrite      = modeRead | modeWrite
	WriteOnce      = modeRead | modeWrite | modeOnce
)

// CanRead reports whether the mode permits reads.
func (m Mode) CanRead() bool { return m&modeRead != 0 }

// CanWrite reports whether the mode permits writes.
func (m Mode) CanWrite() bool { return m&modeWrite != 0 }

// Once reports whether only the first write is permitted.
func (m Mode) Once() bool { return m&modeOnce != 0 && m.CanWrite() }

// Intersect combines two modes: read and write are kept only when both
// permit them, and the once restriction applies when either has it.
func (m Mode) Intersect(other Mode) Mode {
	out := (m & other & (modeRead | modeWrite)) | ((m | other) & modeOnce)
	return out.normalize()
}

// Narrows reports whether m grants nothing beyond other.
func (m Mode) Narrows(other Mode) bool {
	return m.normalize() == m.Intersect(other)
}

func (m Mode) normalize() Mode {
	if !m.CanWrite() {
		m &^= modeOnce
	}
	return m & (modeRead | modeWrite | modeOnce)
}

func (m Mode) String() string {
	switch m.normalize() {
	case None:
		return "none"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	case WriteOnce:
		return "write-once"
	case modeWrite | modeOnce:
		return "write-once-only"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode parses the names returned by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return None, nil
	case "read-only", "readonly", "ro":
		return ReadOnly, nil
	case "write-only", "writeonly", "wo":
		return WriteOnly, nil
	case "read-write", "readwrite", "rw":
		return ReadWrite, nil
	case "write-once", "writeonce":
		return WriteOnce, nil
	case "write-once-only":
		return modeWrite | modeOnce, nil
	}
	return None, fmt.Errorf("unknown property mode %q", s)
}
