package payload

import "fmt"

// Header field widths in hex characters.
const (
	SizeWidth      = 8
	SignatureWidth = 128
	PublicKeyWidth = 64
	VersionWidth   = 4
	TypeWidth      = 4
	FeeWidth       = 16
	DeadlineWidth  = 16

	// HeaderWidth is the minimal payload length.
	HeaderWidth = SizeWidth + SignatureWidth + PublicKeyWidth + VersionWidth +
		TypeWidth + FeeWidth + DeadlineWidth
)

// Header field names.
const (
	SizeField      = "Size"
	SignatureField = "Signature"
	PublicKeyField = "Public key"
	VersionField   = "Version"
	TypeField      = "Type"
	FeeField       = "Fee"
	DeadlineField  = "Deadline"
)

// headerSchema is the type-independent part of every transaction, it's never
// put into a Table.
var headerSchema = Schema{
	Fields: []string{SizeField, SignatureField, PublicKeyField, VersionField,
		TypeField, FeeField, DeadlineField, "Body"},
	Lengths: []Length{Fixed(SizeWidth), Fixed(SignatureWidth), Fixed(PublicKeyWidth),
		Fixed(VersionWidth), Fixed(TypeWidth), Fixed(FeeWidth), Fixed(DeadlineWidth), Rest()},
}

// Header is the fixed-format part of a transaction. All values are raw hex
// substrings of the payload.
type Header struct {
	Size      string
	Signature string
	PublicKey string
	Version   string
	Type      string
	Fee       string
	Deadline  string
	// Body is everything following the header.
	Body string
}

// DecodeHeader splits the payload into header fields and body.
func DecodeHeader(payload string) (*Header, error) {
	if len(payload) < HeaderWidth {
		return nil, fmt.Errorf("%w: %d hex characters is less than %d required for the header",
			ErrTruncatedPayload, len(payload), HeaderWidth)
	}
	fs, err := decodeFields(headerSchema, payload)
	if err != nil {
		return nil, err
	}
	return &Header{
		Size:      fs[0].Value,
		Signature: fs[1].Value,
		PublicKey: fs[2].Value,
		Version:   fs[3].Value,
		Type:      fs[4].Value,
		Fee:       fs[5].Value,
		Deadline:  fs[6].Value,
		Body:      fs[7].Value,
	}, nil
}

// Fields returns header fields (without body) in payload order.
func (h *Header) Fields() []Field {
	return []Field{
		{Name: SizeField, Value: h.Size},
		{Name: SignatureField, Value: h.Signature},
		{Name: PublicKeyField, Value: h.PublicKey},
		{Name: VersionField, Value: h.Version},
		{Name: TypeField, Value: h.Type},
		{Name: FeeField, Value: h.Fee},
		{Name: DeadlineField, Value: h.Deadline},
	}
}
