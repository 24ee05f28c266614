package qbo

// CustomerRequestBuilder builds a Customer create/update body.
type CustomerRequestBuilder struct {
	BaseBuilder
}

// NewCustomer returns an empty customer builder.
func NewCustomer() *CustomerRequestBuilder {
	return &CustomerRequestBuilder{BaseBuilder: newBaseBuilder()}
}

// ResourceName implements Resource.
func (b *CustomerRequestBuilder) ResourceName() string { return "Customer" }

// DisplayName must be unique across customers, vendors and employees.
func (b *CustomerRequestBuilder) DisplayName(value string) *CustomerRequestBuilder {
	b.setString("DisplayName", value, MaxDisplayNameLength)
	return b
}

// CompanyName sets CompanyName (max 50 characters).
func (b *CustomerRequestBuilder) CompanyName(value string) *CustomerRequestBuilder {
	b.setString("CompanyName", value, MaxCompanyNameLength)
	return b
}

// Title sets Title (max 16 characters).
func (b *CustomerRequestBuilder) Title(value string) *CustomerRequestBuilder {
	b.setString("Title", value, MaxTitleLength)
	return b
}

// GivenName sets GivenName (max 100 characters).
func (b *CustomerRequestBuilder) GivenName(value string) *CustomerRequestBuilder {
	b.setString("GivenName", value, MaxPersonNameLength)
	return b
}

// MiddleName sets MiddleName (max 100 characters).
func (b *CustomerRequestBuilder) MiddleName(value string) *CustomerRequestBuilder {
	b.setString("MiddleName", value, MaxPersonNameLength)
	return b
}

// FamilyName sets FamilyName (max 100 characters).
func (b *CustomerRequestBuilder) FamilyName(value string) *CustomerRequestBuilder {
	b.setString("FamilyName", value, MaxPersonNameLength)
	return b
}

// Suffix sets Suffix (max 16 characters).
func (b *CustomerRequestBuilder) Suffix(value string) *CustomerRequestBuilder {
	b.setString("Suffix", value, MaxSuffixLength)
	return b
}

// PrintOnCheckName sets PrintOnCheckName (max 110 characters).
func (b *CustomerRequestBuilder) PrintOnCheckName(value string) *CustomerRequestBuilder {
	b.setString("PrintOnCheckName", value, MaxPrintOnCheckLength)
	return b
}

// Notes sets Notes (max 2000 characters).
func (b *CustomerRequestBuilder) Notes(value string) *CustomerRequestBuilder {
	b.setString("Notes", value, MaxNotesLength)
	return b
}

// PrimaryEmailAddr embeds a snapshot of email.
func (b *CustomerRequestBuilder) PrimaryEmailAddr(email *EmailAddressBuilder) *CustomerRequestBuilder {
	b.embed("PrimaryEmailAddr", email)
	return b
}

// PrimaryPhone embeds a snapshot of phone.
func (b *CustomerRequestBuilder) PrimaryPhone(phone *TelephoneNumberBuilder) *CustomerRequestBuilder {
	b.embed("PrimaryPhone", phone)
	return b
}

// Mobile embeds a snapshot of phone.
func (b *CustomerRequestBuilder) Mobile(phone *TelephoneNumberBuilder) *CustomerRequestBuilder {
	b.embed("Mobile", phone)
	return b
}

// Fax embeds a snapshot of phone.
func (b *CustomerRequestBuilder) Fax(phone *TelephoneNumberBuilder) *CustomerRequestBuilder {
	b.embed("Fax", phone)
	return b
}

// WebAddr embeds a snapshot of site.
func (b *CustomerRequestBuilder) WebAddr(site *WebSiteAddressBuilder) *CustomerRequestBuilder {
	b.embed("WebAddr", site)
	return b
}

// BillAddr embeds a snapshot of addr.
func (b *CustomerRequestBuilder) BillAddr(addr *PhysicalAddressBuilder) *CustomerRequestBuilder {
	b.embed("BillAddr", addr)
	return b
}

// ShipAddr embeds a snapshot of addr.
func (b *CustomerRequestBuilder) ShipAddr(addr *PhysicalAddressBuilder) *CustomerRequestBuilder {
	b.embed("ShipAddr", addr)
	return b
}

// Taxable sets the Taxable flag.
func (b *CustomerRequestBuilder) Taxable(value bool) *CustomerRequestBuilder {
	b.set("Taxable", value)
	return b
}

// Active sets the Active flag.
func (b *CustomerRequestBuilder) Active(value bool) *CustomerRequestBuilder {
	b.set("Active", value)
	return b
}

// Job marks the customer as a sub-customer (job) of ParentRef.
func (b *CustomerRequestBuilder) Job(value bool) *CustomerRequestBuilder {
	b.set("Job", value)
	return b
}

// ParentRef embeds a snapshot of ref.
func (b *CustomerRequestBuilder) ParentRef(ref *RefBuilder) *CustomerRequestBuilder {
	b.embed("ParentRef", ref)
	return b
}

// CurrencyRef embeds a snapshot of ref.
func (b *CustomerRequestBuilder) CurrencyRef(ref *RefBuilder) *CustomerRequestBuilder {
	b.embed("CurrencyRef", ref)
	return b
}

// DefaultTaxCodeRef embeds a snapshot of ref.
func (b *CustomerRequestBuilder) DefaultTaxCodeRef(ref *RefBuilder) *CustomerRequestBuilder {
	b.embed("DefaultTaxCodeRef", ref)
	return b
}

// PaymentMethodRef embeds a snapshot of ref.
func (b *CustomerRequestBuilder) PaymentMethodRef(ref *RefBuilder) *CustomerRequestBuilder {
	b.embed("PaymentMethodRef", ref)
	return b
}
