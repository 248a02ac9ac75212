package payload

import "errors"

// Decoding errors. They're always returned wrapped with details, so use
// [errors.Is] to check for them.
var (
	// ErrUnsupportedType is returned when there is no schema for the
	// transaction type tag.
	ErrUnsupportedType = errors.New("unsupported transaction type")
	// ErrTruncatedPayload is returned when the payload is shorter than its
	// header or than some fixed-width body field.
	ErrTruncatedPayload = errors.New("truncated payload")
	// ErrInconsistentLength is returned when a dynamic field length can't be
	// read or would overrun the payload.
	ErrInconsistentLength = errors.New("inconsistent length field")
	// ErrInvalidSchema is returned for structurally broken schemas.
	ErrInvalidSchema = errors.New("invalid schema")
)
