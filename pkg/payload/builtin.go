package payload

// Common field widths (in hex characters).
const (
	addressWidth   = 50
	hashWidth      = 64
	mosaicIDWidth  = 16
	amountWidth    = 16
	durationWidth  = 16
	namespaceWidth = 16
)

// Builtin transaction type tags as they appear in the payload (that is, the
// little-endian rendering of the type code).
const (
	TagTransfer             = "5441"
	TagMosaicDefinition     = "4D41"
	TagMosaicSupplyChange   = "4D42"
	TagNamespaceRegister    = "4E41"
	TagAddressAlias         = "4E42"
	TagMosaicAlias          = "4E43"
	TagAccountLink          = "4C41"
	TagHashLock             = "4841"
	TagSecretLock           = "5241"
	TagSecretProof          = "5242"
	TagAggregateComplete    = "4141"
	TagAggregateBonded      = "4142"
	TagMultisigModification = "5541"
)

var builtinSchemas = []Schema{
	{
		Tag:     TagTransfer,
		Name:    "Transfer",
		Fields:  []string{"Recipient", "Message size", "Mosaics count", "Message", "Mosaics"},
		Lengths: []Length{Fixed(addressWidth), Fixed(4), Fixed(2), Dynamic(1), Rest()},
	},
	{
		Tag:     TagMosaicDefinition,
		Name:    "Mosaic definition",
		Fields:  []string{"Nonce", "Mosaic Id", "Flags", "Divisibility", "Duration"},
		Lengths: []Length{Fixed(8), Fixed(mosaicIDWidth), Fixed(2), Fixed(2), Fixed(durationWidth)},
	},
	{
		Tag:     TagMosaicSupplyChange,
		Name:    "Mosaic supply change",
		Fields:  []string{"Mosaic Id", "Supply action", "Delta"},
		Lengths: []Length{Fixed(mosaicIDWidth), Fixed(2), Fixed(amountWidth)},
	},
	{
		Tag:     TagNamespaceRegister,
		Name:    "Namespace registration",
		Fields:  []string{"Namespace type", "Duration or parent Id", "Namespace Id", "Name size", "Name"},
		Lengths: []Length{Fixed(2), Fixed(durationWidth), Fixed(namespaceWidth), Fixed(2), Dynamic(3)},
	},
	{
		Tag:     TagAddressAlias,
		Name:    "Address alias",
		Fields:  []string{"Alias action", "Namespace Id", "Address"},
		Lengths: []Length{Fixed(2), Fixed(namespaceWidth), Fixed(addressWidth)},
	},
	{
		Tag:     TagMosaicAlias,
		Name:    "Mosaic alias",
		Fields:  []string{"Alias action", "Namespace Id", "Mosaic Id"},
		Lengths: []Length{Fixed(2), Fixed(namespaceWidth), Fixed(mosaicIDWidth)},
	},
	{
		Tag:     TagAccountLink,
		Name:    "Account link",
		Fields:  []string{"Remote public key", "Link action"},
		Lengths: []Length{Fixed(PublicKeyWidth), Fixed(2)},
	},
	{
		Tag:     TagHashLock,
		Name:    "Hash lock",
		Fields:  []string{"Mosaic Id", "Amount", "Duration", "Hash"},
		Lengths: []Length{Fixed(mosaicIDWidth), Fixed(amountWidth), Fixed(durationWidth), Fixed(hashWidth)},
	},
	{
		Tag:     TagSecretLock,
		Name:    "Secret lock",
		Fields:  []string{"Mosaic Id", "Amount", "Duration", "Hash algorithm", "Secret", "Recipient"},
		Lengths: []Length{Fixed(mosaicIDWidth), Fixed(amountWidth), Fixed(durationWidth), Fixed(2), Fixed(hashWidth), Fixed(addressWidth)},
	},
	{
		Tag:     TagSecretProof,
		Name:    "Secret proof",
		Fields:  []string{"Hash algorithm", "Secret", "Recipient", "Proof size", "Proof"},
		Lengths: []Length{Fixed(2), Fixed(hashWidth), Fixed(addressWidth), Fixed(4), Dynamic(3)},
	},
	{
		Tag:     TagAggregateComplete,
		Name:    "Aggregate complete",
		Fields:  []string{"Payload size", "Transactions", "Cosignatures"},
		Lengths: []Length{Fixed(8), Dynamic(0), Rest()},
	},
	{
		Tag:     TagAggregateBonded,
		Name:    "Aggregate bonded",
		Fields:  []string{"Payload size", "Transactions", "Cosignatures"},
		Lengths: []Length{Fixed(8), Dynamic(0), Rest()},
	},
	{
		Tag:     TagMultisigModification,
		Name:    "Multisig modification",
		Fields:  []string{"Min removal delta", "Min approval delta", "Modifications count", "Modifications"},
		Lengths: []Length{Fixed(2), Fixed(2), Fixed(2), Rest()},
	},
}

var defaultTable = mustTable(builtinSchemas...)

// DefaultTable returns the table of builtin transaction schemas.
func DefaultTable() *Table {
	return defaultTable
}

func mustTable(schemas ...Schema) *Table {
	t, err := NewTable(schemas...)
	if err != nil {
		panic(err)
	}
	return t
}
