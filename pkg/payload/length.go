package payload

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LengthKind is a way of specifying field width.
type LengthKind byte

// Length kinds.
const (
	// FixedKind is a field of constant width.
	FixedKind LengthKind = iota
	// RestKind is a field taking everything left in the payload.
	RestKind
	// DynamicKind is a field whose size in bytes is stored in some
	// previous field.
	DynamicKind
)

// restName is used for RestKind in YAML and string representations.
const (
	restName = "rest"
	refKey   = "ref"
)

// Length specifies the width of a schema field. Use [Fixed], [Rest] and
// [Dynamic] to create it; the zero value is a zero-width fixed field.
type Length struct {
	kind  LengthKind
	width int
	ref   int
}

// dynamicYAML is the YAML form of a Dynamic length.
type dynamicYAML struct {
	Ref int `yaml:"ref"`
}

// Fixed returns a length of the given number of hex characters.
func Fixed(width int) Length {
	return Length{kind: FixedKind, width: width}
}

// Rest returns a length covering all remaining hex characters.
func Rest() Length {
	return Length{kind: RestKind}
}

// Dynamic returns a length read (as a little-endian number of bytes) from
// the field with index ref of the same schema.
func Dynamic(ref int) Length {
	return Length{kind: DynamicKind, ref: ref}
}

// Kind returns length kind.
func (l Length) Kind() LengthKind {
	return l.kind
}

// Width returns fixed field width in hex characters, it's only meaningful
// for FixedKind.
func (l Length) Width() int {
	return l.width
}

// Ref returns the index of the field holding the size, it's only meaningful
// for DynamicKind.
func (l Length) Ref() int {
	return l.ref
}

// String implements the fmt.Stringer interface.
func (l Length) String() string {
	switch l.kind {
	case FixedKind:
		return strconv.Itoa(l.width)
	case RestKind:
		return restName
	case DynamicKind:
		return fmt.Sprintf("ref(%d)", l.ref)
	default:
		return fmt.Sprintf("unknown(%d)", l.kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface.
func (l Length) MarshalYAML() (interface{}, error) {
	switch l.kind {
	case FixedKind:
		return l.width, nil
	case RestKind:
		return restName, nil
	case DynamicKind:
		return dynamicYAML{Ref: l.ref}, nil
	default:
		return nil, fmt.Errorf("unknown length kind %d", l.kind)
	}
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. A length is either
// an integer (fixed width, -1 meaning the rest of payload), a "rest" string
// or a {ref: N} mapping for dynamic lengths.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == restName {
			*l = Rest()
			return nil
		}
		w, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: invalid length %q", node.Line, node.Value)
		}
		if w == -1 {
			*l = Rest()
			return nil
		}
		if w < 0 {
			return fmt.Errorf("line %d: negative length %d", node.Line, w)
		}
		*l = Fixed(w)
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 || node.Content[0].Value != refKey {
			return fmt.Errorf("line %d: dynamic length must be a mapping with a single %q key", node.Line, refKey)
		}
		var ref int
		if err := node.Content[1].Decode(&ref); err != nil {
			return fmt.Errorf("line %d: invalid length reference: %w", node.Line, err)
		}
		*l = Dynamic(ref)
		return nil
	default:
		return fmt.Errorf("line %d: length must be an integer, %q or a {ref: N} mapping", node.Line, restName)
	}
}
