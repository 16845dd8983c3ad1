package rawpaint

import (
	"fmt"
	"strings"
)

// Operation is the blend rule that governs how a stamped color combines
// with the sample already in the canvas.
type Operation uint8

const (
	// Replace overwrites the sample with the stamped color.
	Replace Operation = iota

	// Add adds the stamped color to the sample.
	Add

	// Subtract subtracts the stamped color from the sample.
	Subtract
)

// String returns the lowercase name of the operation.
func (op Operation) String() string {
	switch op {
	case Replace:
		return "replace"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	default:
		return fmt.Sprintf("Operation(%d)", uint8(op))
	}
}

// Valid reports whether op is one of the defined operations.
func (op Operation) Valid() bool {
	return op <= Subtract
}

// Apply combines src into dst. Channels are not clamped.
func (op Operation) Apply(dst, src RGBA) RGBA {
	switch op {
	case Add:
		return dst.Add(src)
	case Subtract:
		return dst.Sub(src)
	default:
		return src
	}
}

// ParseOperation parses an operation name, ignoring case.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace", "":
		return Replace, nil
	case "add":
		return Add, nil
	case "subtract", "sub":
		return Subtract, nil
	default:
		return Replace, fmt.Errorf("rawpaint: unknown paint operation %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (op Operation) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("rawpaint: invalid paint operation %d", uint8(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operation) UnmarshalText(text []byte) error {
	v, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = v
	return nil
}
