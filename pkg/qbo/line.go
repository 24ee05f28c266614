// =============================================================================
// QBO Request Builder - Line Builders
// =============================================================================
//
// A Line is one repeatable element of a transaction. Every line has the same
// outer shape (Id, LineNum, Amount, Description, LinkedTxn) plus exactly one
// detail payload whose name is repeated in DetailType:
//
//   {"Amount": 100, "DetailType": "SalesItemLineDetail",
//    "SalesItemLineDetail": {"ItemRef": {"value": "5"}, "Qty": 2, "UnitPrice": 50}}
//
// =============================================================================

package qbo

import "time"

const (
	DetailTypeSalesItem = "SalesItemLineDetail"
	DetailTypeDiscount  = "DiscountLineDetail"
	DetailTypeTax       = "TaxLineDetail"
)

// LineBuilder builds one Line element.
type LineBuilder struct {
	BaseBuilder
}

// NewLine returns an empty line builder.
func NewLine() *LineBuilder {
	return &LineBuilder{BaseBuilder: newBaseBuilder()}
}

// NewSalesItemLine returns a line for an invoice or sales receipt; attach the
// payload with SalesItemLineDetail.
func NewSalesItemLine() *LineBuilder { return NewLine() }

// NewDiscountLine returns a line for a discount; attach the payload with
// DiscountLineDetail.
func NewDiscountLine() *LineBuilder { return NewLine() }

// NewTaxLine returns a TxnTaxDetail tax line; attach the payload with
// TaxLineDetail.
func NewTaxLine() *LineBuilder { return NewLine() }

// NewPaymentLine returns a payment line. Payment lines carry no detail
// payload, only the transactions they settle, so LinkedTxn starts empty.
func NewPaymentLine() *LineBuilder {
	b := NewLine()
	b.set("LinkedTxn", []any{})
	return b
}

// Id is only needed when updating an existing line.
func (b *LineBuilder) Id(value string) *LineBuilder {
	b.set("Id", value)
	return b
}

// LineNum sets LineNum.
func (b *LineBuilder) LineNum(value int) *LineBuilder {
	b.set("LineNum", value)
	return b
}

// Amount sets Amount.
func (b *LineBuilder) Amount(value float64) *LineBuilder {
	b.set("Amount", value)
	return b
}

// Description sets Description (max 4000 characters).
func (b *LineBuilder) Description(value string) *LineBuilder {
	b.setString("Description", value, MaxDescriptionLength)
	return b
}

// AddLinkedTxn appends a linked transaction. Order of calls is kept.
func (b *LineBuilder) AddLinkedTxn(txn *LinkedTransactionBuilder) *LineBuilder {
	b.appendTo("LinkedTxn", txn)
	return b
}

// SalesItemLineDetail sets DetailType to "SalesItemLineDetail" and embeds detail under it.
func (b *LineBuilder) SalesItemLineDetail(detail *SalesItemLineDetailBuilder) *LineBuilder {
	b.detail(DetailTypeSalesItem, detail)
	return b
}

// DiscountLineDetail sets DetailType to "DiscountLineDetail" and embeds detail under it.
func (b *LineBuilder) DiscountLineDetail(detail *DiscountLineDetailBuilder) *LineBuilder {
	b.detail(DetailTypeDiscount, detail)
	return b
}

// TaxLineDetail sets DetailType to "TaxLineDetail" and embeds detail under it.
func (b *LineBuilder) TaxLineDetail(detail *TaxLineDetailBuilder) *LineBuilder {
	b.detail(DetailTypeTax, detail)
	return b
}

func (b *LineBuilder) detail(detailType string, detail Builder) {
	if b.rejectNil(detailType, detail) || b.absorbErrors(detailType, detail) {
		return
	}
	b.set("DetailType", detailType)
	b.set(detailType, detail.Request().Clone())
}

// =============================================================================
// DETAIL PAYLOADS
// =============================================================================

// SalesItemLineDetailBuilder builds a SalesItemLineDetail payload.
type SalesItemLineDetailBuilder struct {
	BaseBuilder
}

// NewSalesItemLineDetail returns an empty SalesItemLineDetail builder.
func NewSalesItemLineDetail() *SalesItemLineDetailBuilder {
	return &SalesItemLineDetailBuilder{BaseBuilder: newBaseBuilder()}
}

// ItemRef embeds a snapshot of ref.
func (b *SalesItemLineDetailBuilder) ItemRef(ref *RefBuilder) *SalesItemLineDetailBuilder {
	b.embed("ItemRef", ref)
	return b
}

// TaxCodeRef embeds a snapshot of ref.
func (b *SalesItemLineDetailBuilder) TaxCodeRef(ref *RefBuilder) *SalesItemLineDetailBuilder {
	b.embed("TaxCodeRef", ref)
	return b
}

// Qty sets Qty.
func (b *SalesItemLineDetailBuilder) Qty(value float64) *SalesItemLineDetailBuilder {
	b.set("Qty", value)
	return b
}

// UnitPrice sets UnitPrice.
func (b *SalesItemLineDetailBuilder) UnitPrice(value float64) *SalesItemLineDetailBuilder {
	b.set("UnitPrice", value)
	return b
}

// ServiceDate sets ServiceDate as a YYYY-MM-DDZ date.
func (b *SalesItemLineDetailBuilder) ServiceDate(date time.Time) *SalesItemLineDetailBuilder {
	b.setDate("ServiceDate", date)
	return b
}

// DiscountLineDetailBuilder builds a DiscountLineDetail payload.
type DiscountLineDetailBuilder struct {
	BaseBuilder
}

// NewDiscountLineDetail returns an empty DiscountLineDetail builder.
func NewDiscountLineDetail() *DiscountLineDetailBuilder {
	return &DiscountLineDetailBuilder{BaseBuilder: newBaseBuilder()}
}

// PercentBased sets the PercentBased flag.
func (b *DiscountLineDetailBuilder) PercentBased(value bool) *DiscountLineDetailBuilder {
	b.set("PercentBased", value)
	return b
}

// DiscountPercent sets DiscountPercent.
func (b *DiscountLineDetailBuilder) DiscountPercent(value float64) *DiscountLineDetailBuilder {
	b.set("DiscountPercent", value)
	return b
}

// DiscountAccountRef embeds a snapshot of ref.
func (b *DiscountLineDetailBuilder) DiscountAccountRef(ref *RefBuilder) *DiscountLineDetailBuilder {
	b.embed("DiscountAccountRef", ref)
	return b
}

// TaxLineDetailBuilder builds a TaxLineDetail payload.
type TaxLineDetailBuilder struct {
	BaseBuilder
}

// NewTaxLineDetail returns an empty TaxLineDetail builder.
func NewTaxLineDetail() *TaxLineDetailBuilder {
	return &TaxLineDetailBuilder{BaseBuilder: newBaseBuilder()}
}

// TaxRateRef embeds a snapshot of ref.
func (b *TaxLineDetailBuilder) TaxRateRef(ref *RefBuilder) *TaxLineDetailBuilder {
	b.embed("TaxRateRef", ref)
	return b
}

// PercentBased sets the PercentBased flag.
func (b *TaxLineDetailBuilder) PercentBased(value bool) *TaxLineDetailBuilder {
	b.set("PercentBased", value)
	return b
}

// TaxPercent sets TaxPercent.
func (b *TaxLineDetailBuilder) TaxPercent(value float64) *TaxLineDetailBuilder {
	b.set("TaxPercent", value)
	return b
}

// NetAmountTaxable sets NetAmountTaxable.
func (b *TaxLineDetailBuilder) NetAmountTaxable(value float64) *TaxLineDetailBuilder {
	b.set("NetAmountTaxable", value)
	return b
}

// =============================================================================
// LINKED TRANSACTIONS
// =============================================================================

// LinkedTransactionBuilder references an existing transaction, e.g. the
// invoice a payment line settles.
type LinkedTransactionBuilder struct {
	BaseBuilder
}

// NewLinkedTransaction returns an empty LinkedTxn element builder.
func NewLinkedTransaction() *LinkedTransactionBuilder {
	return &LinkedTransactionBuilder{BaseBuilder: newBaseBuilder()}
}

// TxnId sets TxnId.
func (b *LinkedTransactionBuilder) TxnId(value string) *LinkedTransactionBuilder {
	b.set("TxnId", value)
	return b
}

// TxnType must be one of LinkedTxnTypes.
func (b *LinkedTransactionBuilder) TxnType(value string) *LinkedTransactionBuilder {
	b.setFromSet("TxnType", value, LinkedTxnTypes)
	return b
}

// TxnLineId sets TxnLineId.
func (b *LinkedTransactionBuilder) TxnLineId(value string) *LinkedTransactionBuilder {
	b.set("TxnLineId", value)
	return b
}
