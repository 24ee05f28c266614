package qbo

import "time"

// PaymentRequestBuilder builds a (receive) Payment body. Each Line links the
// payment to the invoices or credit memos it applies to.
type PaymentRequestBuilder struct {
	BaseBuilder
}

// NewPayment returns a payment builder with an empty Line sequence.
func NewPayment() *PaymentRequestBuilder {
	b := &PaymentRequestBuilder{BaseBuilder: newBaseBuilder()}
	b.set("Line", []any{})
	return b
}

// ResourceName implements Resource.
func (b *PaymentRequestBuilder) ResourceName() string { return "Payment" }

// AddLine appends a snapshot of line to Line.
func (b *PaymentRequestBuilder) AddLine(line *LineBuilder) *PaymentRequestBuilder {
	b.appendTo("Line", line)
	return b
}

// CustomerRef embeds a snapshot of ref.
func (b *PaymentRequestBuilder) CustomerRef(ref *RefBuilder) *PaymentRequestBuilder {
	b.embed("CustomerRef", ref)
	return b
}

// ARAccountRef selects the accounts receivable account the payment credits.
func (b *PaymentRequestBuilder) ARAccountRef(ref *RefBuilder) *PaymentRequestBuilder {
	b.embed("ARAccountRef", ref)
	return b
}

// DepositToAccountRef embeds a snapshot of ref.
func (b *PaymentRequestBuilder) DepositToAccountRef(ref *RefBuilder) *PaymentRequestBuilder {
	b.embed("DepositToAccountRef", ref)
	return b
}

// PaymentMethodRef embeds a snapshot of ref.
func (b *PaymentRequestBuilder) PaymentMethodRef(ref *RefBuilder) *PaymentRequestBuilder {
	b.embed("PaymentMethodRef", ref)
	return b
}

// CurrencyRef embeds a snapshot of ref.
func (b *PaymentRequestBuilder) CurrencyRef(ref *RefBuilder) *PaymentRequestBuilder {
	b.embed("CurrencyRef", ref)
	return b
}

// TotalAmount sets TotalAmt.
func (b *PaymentRequestBuilder) TotalAmount(value float64) *PaymentRequestBuilder {
	b.set("TotalAmt", value)
	return b
}

// TransactionDate sets TxnDate as a YYYY-MM-DDZ date.
func (b *PaymentRequestBuilder) TransactionDate(date time.Time) *PaymentRequestBuilder {
	b.setDate("TxnDate", date)
	return b
}

// PaymentRefNum sets PaymentRefNum (max 21 characters).
func (b *PaymentRequestBuilder) PaymentRefNum(value string) *PaymentRequestBuilder {
	b.setString("PaymentRefNum", value, MaxPaymentRefNumLength)
	return b
}

// PrivateNote sets PrivateNote (max 4000 characters).
func (b *PaymentRequestBuilder) PrivateNote(value string) *PaymentRequestBuilder {
	b.setString("PrivateNote", value, MaxPrivateNoteLength)
	return b
}
