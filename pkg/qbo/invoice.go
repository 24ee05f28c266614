package qbo

import "time"

// InvoiceRequestBuilder builds an Invoice create body. Line starts as an
// empty sequence.
type InvoiceRequestBuilder struct {
	BaseBuilder
}

// NewInvoice returns an invoice builder with an empty Line sequence.
func NewInvoice() *InvoiceRequestBuilder {
	b := &InvoiceRequestBuilder{BaseBuilder: newBaseBuilder()}
	b.set("Line", []any{})
	return b
}

// ResourceName implements Resource.
func (b *InvoiceRequestBuilder) ResourceName() string { return "Invoice" }

// AddLine appends a snapshot of line to Line.
func (b *InvoiceRequestBuilder) AddLine(line *LineBuilder) *InvoiceRequestBuilder {
	b.appendTo("Line", line)
	return b
}

// CustomerRef embeds a snapshot of ref.
func (b *InvoiceRequestBuilder) CustomerRef(ref *RefBuilder) *InvoiceRequestBuilder {
	b.embed("CustomerRef", ref)
	return b
}

// DocNumber sets DocNumber (max 21 characters).
func (b *InvoiceRequestBuilder) DocNumber(value string) *InvoiceRequestBuilder {
	b.setString("DocNumber", value, MaxDocNumberLength)
	return b
}

// TxnDate sets TxnDate as a YYYY-MM-DDZ date.
func (b *InvoiceRequestBuilder) TxnDate(date time.Time) *InvoiceRequestBuilder {
	b.setDate("TxnDate", date)
	return b
}

// DueDate sets DueDate as a YYYY-MM-DDZ date.
func (b *InvoiceRequestBuilder) DueDate(date time.Time) *InvoiceRequestBuilder {
	b.setDate("DueDate", date)
	return b
}

// CustomerMemo is shown to the customer on the printed invoice.
func (b *InvoiceRequestBuilder) CustomerMemo(value string) *InvoiceRequestBuilder {
	if err := SanitizeLength("CustomerMemo", value, MaxCustomerMemoLength); err != nil {
		b.fail(err)
		return b
	}
	memo := NewRequest()
	memo.Set("value", value)
	b.set("CustomerMemo", memo)
	return b
}

// PrivateNote sets PrivateNote (max 4000 characters).
func (b *InvoiceRequestBuilder) PrivateNote(value string) *InvoiceRequestBuilder {
	b.setString("PrivateNote", value, MaxPrivateNoteLength)
	return b
}

// BillEmail embeds a snapshot of email.
func (b *InvoiceRequestBuilder) BillEmail(email *EmailAddressBuilder) *InvoiceRequestBuilder {
	b.embed("BillEmail", email)
	return b
}

// BillAddr embeds a snapshot of addr.
func (b *InvoiceRequestBuilder) BillAddr(addr *PhysicalAddressBuilder) *InvoiceRequestBuilder {
	b.embed("BillAddr", addr)
	return b
}

// ShipAddr embeds a snapshot of addr.
func (b *InvoiceRequestBuilder) ShipAddr(addr *PhysicalAddressBuilder) *InvoiceRequestBuilder {
	b.embed("ShipAddr", addr)
	return b
}

// TxnTaxDetail embeds a snapshot of detail.
func (b *InvoiceRequestBuilder) TxnTaxDetail(detail *TransactionTaxDetailBuilder) *InvoiceRequestBuilder {
	b.embed("TxnTaxDetail", detail)
	return b
}

// CurrencyRef embeds a snapshot of ref.
func (b *InvoiceRequestBuilder) CurrencyRef(ref *RefBuilder) *InvoiceRequestBuilder {
	b.embed("CurrencyRef", ref)
	return b
}

// SalesTermRef embeds a snapshot of ref.
func (b *InvoiceRequestBuilder) SalesTermRef(ref *RefBuilder) *InvoiceRequestBuilder {
	b.embed("SalesTermRef", ref)
	return b
}

// ApplyTaxAfterDiscount sets the ApplyTaxAfterDiscount flag.
func (b *InvoiceRequestBuilder) ApplyTaxAfterDiscount(value bool) *InvoiceRequestBuilder {
	b.set("ApplyTaxAfterDiscount", value)
	return b
}

// AllowOnlineCreditCardPayment sets the AllowOnlineCreditCardPayment flag.
func (b *InvoiceRequestBuilder) AllowOnlineCreditCardPayment(value bool) *InvoiceRequestBuilder {
	b.set("AllowOnlineCreditCardPayment", value)
	return b
}

// AllowOnlineACHPayment sets the AllowOnlineACHPayment flag.
func (b *InvoiceRequestBuilder) AllowOnlineACHPayment(value bool) *InvoiceRequestBuilder {
	b.set("AllowOnlineACHPayment", value)
	return b
}
