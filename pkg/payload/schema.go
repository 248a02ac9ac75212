package payload

import (
	"fmt"
	"strings"
)

// maxLengthWidth is the widest (in hex characters) field that can hold the
// size of a dynamic field, that's an uint64.
const maxLengthWidth = 16

// Schema describes the body layout of a transaction type. Fields and Lengths
// are parallel, the order of fields defines their offsets.
type Schema struct {
	Tag     string   `yaml:"Tag"`
	Name    string   `yaml:"Name"`
	Fields  []string `yaml:"Fields"`
	Lengths []Length `yaml:"Lengths"`
}

// Validate checks schema consistency: field and length counts must match,
// a rest-of-payload field can only be the last one and dynamic lengths must
// refer to some preceding fixed field of 1-8 bytes.
func (s Schema) Validate() error {
	if len(s.Tag) != TypeWidth || !isUpperHex(s.Tag) {
		return fmt.Errorf("%w: tag %q is not %d upper case hex characters", ErrInvalidSchema, s.Tag, TypeWidth)
	}
	if len(s.Fields) != len(s.Lengths) {
		return fmt.Errorf("%w: %s has %d fields and %d lengths", ErrInvalidSchema, s.Tag, len(s.Fields), len(s.Lengths))
	}
	for i, l := range s.Lengths {
		switch l.kind {
		case FixedKind:
			if l.width < 0 {
				return fmt.Errorf("%w: %s field %q has negative width %d", ErrInvalidSchema, s.Tag, s.Fields[i], l.width)
			}
		case RestKind:
			if i != len(s.Lengths)-1 {
				return fmt.Errorf("%w: %s field %q takes the rest of payload, but it's not the last one", ErrInvalidSchema, s.Tag, s.Fields[i])
			}
		case DynamicKind:
			if l.ref < 0 || l.ref >= i {
				return fmt.Errorf("%w: %s field %q refers to field %d which doesn't precede it", ErrInvalidSchema, s.Tag, s.Fields[i], l.ref)
			}
			ref := s.Lengths[l.ref]
			if ref.kind != FixedKind || ref.width < 2 || ref.width > maxLengthWidth || ref.width%2 != 0 {
				return fmt.Errorf("%w: %s field %q size is stored in %q (%s) which is not a 1-8 byte fixed field",
					ErrInvalidSchema, s.Tag, s.Fields[i], s.Fields[l.ref], ref)
			}
		default:
			return fmt.Errorf("%w: %s field %q has unknown length kind %d", ErrInvalidSchema, s.Tag, s.Fields[i], l.kind)
		}
	}
	return nil
}

// Layout returns a human-readable description of the schema fields, like
// "Nonce 8, Mosaic Id 16".
func (s Schema) Layout() string {
	var sb strings.Builder
	for i := range s.Fields {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.Fields[i])
		if i < len(s.Lengths) {
			sb.WriteByte(' ')
			sb.WriteString(s.Lengths[i].String())
		}
	}
	return sb.String()
}

// Copy returns a deep copy of the schema.
func (s Schema) Copy() Schema {
	s.Fields = append([]string(nil), s.Fields...)
	s.Lengths = append([]Length(nil), s.Lengths...)
	return s
}

func isUpperHex(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
