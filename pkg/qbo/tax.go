package qbo

// TaxServiceRequestBuilder builds a TaxService/Taxcode body, which creates a
// tax code together with its tax rates.
type TaxServiceRequestBuilder struct {
	BaseBuilder
}

// NewTaxService returns a tax service builder with an empty TaxRateDetails
// sequence.
func NewTaxService() *TaxServiceRequestBuilder {
	b := &TaxServiceRequestBuilder{BaseBuilder: newBaseBuilder()}
	b.set("TaxRateDetails", []any{})
	return b
}

// ResourceName implements Resource.
func (b *TaxServiceRequestBuilder) ResourceName() string { return "TaxService" }

// TaxCode sets TaxCode (max 100 characters).
func (b *TaxServiceRequestBuilder) TaxCode(value string) *TaxServiceRequestBuilder {
	b.setString("TaxCode", value, MaxTaxCodeLength)
	return b
}

// AddRateDetail appends a snapshot of detail to TaxRateDetails.
func (b *TaxServiceRequestBuilder) AddRateDetail(detail *TaxRateDetailsBuilder) *TaxServiceRequestBuilder {
	b.appendTo("TaxRateDetails", detail)
	return b
}

// TaxRateDetailsBuilder builds one TaxRateDetails element. Either TaxRateId
// (existing rate) or TaxRateName, RateValue and TaxAgencyId (new rate) are set.
type TaxRateDetailsBuilder struct {
	BaseBuilder
}

// NewTaxRateDetails returns an empty TaxRateDetails builder.
func NewTaxRateDetails() *TaxRateDetailsBuilder {
	return &TaxRateDetailsBuilder{BaseBuilder: newBaseBuilder()}
}

// Name sets TaxRateName, at most 100 characters.
func (b *TaxRateDetailsBuilder) Name(value string) *TaxRateDetailsBuilder {
	b.setString("TaxRateName", value, MaxTaxRateNameLength)
	return b
}

// RateID sets TaxRateId.
func (b *TaxRateDetailsBuilder) RateID(value string) *TaxRateDetailsBuilder {
	b.set("TaxRateId", value)
	return b
}

// Rate sets RateValue.
func (b *TaxRateDetailsBuilder) Rate(value float64) *TaxRateDetailsBuilder {
	b.set("RateValue", value)
	return b
}

// AgencyID sets TaxAgencyId.
func (b *TaxRateDetailsBuilder) AgencyID(value string) *TaxRateDetailsBuilder {
	b.set("TaxAgencyId", value)
	return b
}

// ApplicableOnSales sets TaxApplicableOn to "Sales".
func (b *TaxRateDetailsBuilder) ApplicableOnSales() *TaxRateDetailsBuilder {
	b.set("TaxApplicableOn", TaxApplicableOnSales)
	return b
}

// ApplicableOnPurchase sets TaxApplicableOn to "Purchase".
func (b *TaxRateDetailsBuilder) ApplicableOnPurchase() *TaxRateDetailsBuilder {
	b.set("TaxApplicableOn", TaxApplicableOnPurchase)
	return b
}

// TransactionTaxDetailBuilder builds the TxnTaxDetail of a sales transaction.
type TransactionTaxDetailBuilder struct {
	BaseBuilder
}

// NewTransactionTaxDetail returns a builder with an empty TaxLine sequence.
func NewTransactionTaxDetail() *TransactionTaxDetailBuilder {
	b := &TransactionTaxDetailBuilder{BaseBuilder: newBaseBuilder()}
	b.set("TaxLine", []any{})
	return b
}

// TxnTaxCodeRef embeds a snapshot of ref.
func (b *TransactionTaxDetailBuilder) TxnTaxCodeRef(ref *RefBuilder) *TransactionTaxDetailBuilder {
	b.embed("TxnTaxCodeRef", ref)
	return b
}

// TotalTax sets TotalTax.
func (b *TransactionTaxDetailBuilder) TotalTax(value float64) *TransactionTaxDetailBuilder {
	b.set("TotalTax", value)
	return b
}

// AddTaxLine appends a line built with NewTaxLine.
func (b *TransactionTaxDetailBuilder) AddTaxLine(line *LineBuilder) *TransactionTaxDetailBuilder {
	b.appendTo("TaxLine", line)
	return b
}
