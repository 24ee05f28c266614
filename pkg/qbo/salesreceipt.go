package qbo

import "time"

// SalesReceiptRequestBuilder builds a SalesReceipt body: a sale paid in full
// at the time of the transaction.
type SalesReceiptRequestBuilder struct {
	BaseBuilder
}

// NewSalesReceipt returns a sales receipt builder with an empty Line sequence.
func NewSalesReceipt() *SalesReceiptRequestBuilder {
	b := &SalesReceiptRequestBuilder{BaseBuilder: newBaseBuilder()}
	b.set("Line", []any{})
	return b
}

// ResourceName implements Resource.
func (b *SalesReceiptRequestBuilder) ResourceName() string { return "SalesReceipt" }

// AddLine appends a snapshot of line to Line.
func (b *SalesReceiptRequestBuilder) AddLine(line *LineBuilder) *SalesReceiptRequestBuilder {
	b.appendTo("Line", line)
	return b
}

// CustomerRef embeds a snapshot of ref.
func (b *SalesReceiptRequestBuilder) CustomerRef(ref *RefBuilder) *SalesReceiptRequestBuilder {
	b.embed("CustomerRef", ref)
	return b
}

// DocNumber sets DocNumber (max 21 characters).
func (b *SalesReceiptRequestBuilder) DocNumber(value string) *SalesReceiptRequestBuilder {
	b.setString("DocNumber", value, MaxDocNumberLength)
	return b
}

// TxnDate sets TxnDate as a YYYY-MM-DDZ date.
func (b *SalesReceiptRequestBuilder) TxnDate(date time.Time) *SalesReceiptRequestBuilder {
	b.setDate("TxnDate", date)
	return b
}

// PaymentTypeCash sets PaymentType to "Cash".
func (b *SalesReceiptRequestBuilder) PaymentTypeCash() *SalesReceiptRequestBuilder {
	b.set("PaymentType", PaymentTypeCash)
	return b
}

// PaymentTypeCheck sets PaymentType to "Check".
func (b *SalesReceiptRequestBuilder) PaymentTypeCheck() *SalesReceiptRequestBuilder {
	b.set("PaymentType", PaymentTypeCheck)
	return b
}

// PaymentTypeCreditCard sets PaymentType to "CreditCard".
func (b *SalesReceiptRequestBuilder) PaymentTypeCreditCard() *SalesReceiptRequestBuilder {
	b.set("PaymentType", PaymentTypeCreditCard)
	return b
}

// PaymentTypeOther sets PaymentType to "Other".
func (b *SalesReceiptRequestBuilder) PaymentTypeOther() *SalesReceiptRequestBuilder {
	b.set("PaymentType", PaymentTypeOther)
	return b
}

// PaymentMethodRef embeds a snapshot of ref.
func (b *SalesReceiptRequestBuilder) PaymentMethodRef(ref *RefBuilder) *SalesReceiptRequestBuilder {
	b.embed("PaymentMethodRef", ref)
	return b
}

// PaymentRefNum sets PaymentRefNum (max 21 characters).
func (b *SalesReceiptRequestBuilder) PaymentRefNum(value string) *SalesReceiptRequestBuilder {
	b.setString("PaymentRefNum", value, MaxPaymentRefNumLength)
	return b
}

// DepositToAccountRef embeds a snapshot of ref.
func (b *SalesReceiptRequestBuilder) DepositToAccountRef(ref *RefBuilder) *SalesReceiptRequestBuilder {
	b.embed("DepositToAccountRef", ref)
	return b
}

// BillEmail embeds a snapshot of email.
func (b *SalesReceiptRequestBuilder) BillEmail(email *EmailAddressBuilder) *SalesReceiptRequestBuilder {
	b.embed("BillEmail", email)
	return b
}

// BillAddr embeds a snapshot of addr.
func (b *SalesReceiptRequestBuilder) BillAddr(addr *PhysicalAddressBuilder) *SalesReceiptRequestBuilder {
	b.embed("BillAddr", addr)
	return b
}

// ShipAddr embeds a snapshot of addr.
func (b *SalesReceiptRequestBuilder) ShipAddr(addr *PhysicalAddressBuilder) *SalesReceiptRequestBuilder {
	b.embed("ShipAddr", addr)
	return b
}

// CustomerMemo sets the memo shown to the customer, wrapped as {"value": ...}.
// At most 1000 characters.
func (b *SalesReceiptRequestBuilder) CustomerMemo(value string) *SalesReceiptRequestBuilder {
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
func (b *SalesReceiptRequestBuilder) PrivateNote(value string) *SalesReceiptRequestBuilder {
	b.setString("PrivateNote", value, MaxPrivateNoteLength)
	return b
}

// TxnTaxDetail embeds a snapshot of detail.
func (b *SalesReceiptRequestBuilder) TxnTaxDetail(detail *TransactionTaxDetailBuilder) *SalesReceiptRequestBuilder {
	b.embed("TxnTaxDetail", detail)
	return b
}

// CurrencyRef embeds a snapshot of ref.
func (b *SalesReceiptRequestBuilder) CurrencyRef(ref *RefBuilder) *SalesReceiptRequestBuilder {
	b.embed("CurrencyRef", ref)
	return b
}
