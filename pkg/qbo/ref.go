package qbo

// RefKind labels what a reference points at. It is never serialized: every
// reference has the same {name, type, value} shape.
type RefKind string

const (
	RefItem          RefKind = "Item"
	RefCustomer      RefKind = "Customer"
	RefAccount       RefKind = "Account"
	RefTaxCode       RefKind = "TaxCode"
	RefTaxRate       RefKind = "TaxRate"
	RefPaymentMethod RefKind = "PaymentMethod"
	RefCurrency      RefKind = "Currency"
	RefSalesTerm     RefKind = "SalesTerm"
)

// RefBuilder builds a reference to another QBO entity by id.
type RefBuilder struct {
	BaseBuilder
	kind RefKind
}

// NewRefBuilder returns a reference builder tagged with kind.
func NewRefBuilder(kind RefKind) *RefBuilder {
	return &RefBuilder{BaseBuilder: newBaseBuilder(), kind: kind}
}

// Named constructors, one per reference kind.
func ItemRef() *RefBuilder          { return NewRefBuilder(RefItem) }
func CustomerRef() *RefBuilder      { return NewRefBuilder(RefCustomer) }
func AccountRef() *RefBuilder       { return NewRefBuilder(RefAccount) }
func TaxCodeRef() *RefBuilder       { return NewRefBuilder(RefTaxCode) }
func TaxRateRef() *RefBuilder       { return NewRefBuilder(RefTaxRate) }
func PaymentMethodRef() *RefBuilder { return NewRefBuilder(RefPaymentMethod) }
func CurrencyRef() *RefBuilder      { return NewRefBuilder(RefCurrency) }
func SalesTermRef() *RefBuilder     { return NewRefBuilder(RefSalesTerm) }

// Kind returns the tag the builder was created with.
func (b *RefBuilder) Kind() RefKind {
	return b.kind
}

// Name sets the optional display name of the referenced entity.
func (b *RefBuilder) Name(value string) *RefBuilder {
	b.set("name", value)
	return b
}

// Type sets the optional entity type hint.
func (b *RefBuilder) Type(value string) *RefBuilder {
	b.set("type", value)
	return b
}

// Value sets the referenced entity id.
func (b *RefBuilder) Value(value string) *RefBuilder {
	b.set("value", value)
	return b
}
