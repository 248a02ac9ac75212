/*
Package payload decodes hex-encoded transaction payloads into named raw fields.

A payload consists of a fixed-format header followed by a body whose layout
depends on the transaction type found in the header. Body layouts are
described by a [Schema] and looked up in a [Table]. Decoding only slices the
payload, field values are never interpreted except for the ones holding sizes
of dynamic fields, so the concatenation of all decoded values is always equal
to the original payload.
*/
package payload

import (
	"fmt"

	"github.com/nspcc-dev/txdump/pkg/util"
)

// Field is a single decoded field.
type Field struct {
	Name  string
	Value string
}

// Transaction is a decoded transaction payload.
type Transaction struct {
	Header Header
	// Name is the transaction type name from its schema.
	Name string
	// Body contains decoded body fields in schema order.
	Body []Field
}

// cursor is the decoding state threaded through the schema fields.
type cursor struct {
	pos     int
	offsets []int
	fields  []Field
}

// Decode decodes the complete payload using schemas from the table.
func Decode(t *Table, payload string) (*Transaction, error) {
	h, err := DecodeHeader(payload)
	if err != nil {
		return nil, err
	}
	s, err := lookup(t, h.Type)
	if err != nil {
		return nil, err
	}
	body, err := decodeFields(s, h.Body)
	if err != nil {
		return nil, err
	}
	return &Transaction{Header: *h, Name: s.Name, Body: body}, nil
}

// DecodeBody decodes transaction body of the given type.
func DecodeBody(t *Table, tag, body string) ([]Field, error) {
	s, err := lookup(t, tag)
	if err != nil {
		return nil, err
	}
	return decodeFields(s, body)
}

// Fields returns all header and body fields in payload order.
func (tx *Transaction) Fields() []Field {
	return append(tx.Header.Fields(), tx.Body...)
}

func lookup(t *Table, tag string) (Schema, error) {
	s, ok := t.Get(tag)
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnsupportedType, tag)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// decodeFields splits data according to the (valid) schema.
func decodeFields(s Schema, data string) ([]Field, error) {
	var (
		c = cursor{
			offsets: make([]int, 0, len(s.Fields)),
			fields:  make([]Field, 0, len(s.Fields)),
		}
		err error
	)
	for i := range s.Fields {
		c, err = c.next(s, i, data)
		if err != nil {
			return nil, err
		}
	}
	return c.fields, nil
}

// next consumes field i of the schema and returns the updated cursor.
func (c cursor) next(s Schema, i int, data string) (cursor, error) {
	var (
		name = s.Fields[i]
		left = len(data) - c.pos
		n    int
	)
	switch l := s.Lengths[i]; l.kind {
	case FixedKind:
		if l.width > left {
			return c, fmt.Errorf("%w: field %q needs %d hex characters, only %d left",
				ErrTruncatedPayload, name, l.width, left)
		}
		n = l.width
	case RestKind:
		n = left
	case DynamicKind:
		start := c.offsets[l.ref]
		raw := data[start : start+s.Lengths[l.ref].width]
		size, err := util.Uint64FromHexLE(raw)
		if err != nil {
			return c, fmt.Errorf("%w: field %q size %q: %v", ErrInconsistentLength, name, raw, err)
		}
		if size > uint64(left/2) {
			return c, fmt.Errorf("%w: field %q is %d bytes long, only %d hex characters left",
				ErrInconsistentLength, name, size, left)
		}
		n = int(size) * 2
	default:
		return c, fmt.Errorf("%w: field %q has unknown length kind %d", ErrInvalidSchema, name, l.kind)
	}
	c.offsets = append(c.offsets, c.pos)
	c.fields = append(c.fields, Field{Name: name, Value: data[c.pos : c.pos+n]})
	c.pos += n
	return c, nil
}
