// =============================================================================
// QBO Request Builder - Contact Builders
// =============================================================================
//
// Addresses, phone numbers, e-mail and web addresses are embedded by
// customers, invoices and sales receipts (BillAddr, PrimaryPhone, BillEmail...).
//
// =============================================================================

package qbo

// PhysicalAddressBuilder builds a PhysicalAddress.
type PhysicalAddressBuilder struct {
	BaseBuilder
}

// NewPhysicalAddress returns an empty address builder.
func NewPhysicalAddress() *PhysicalAddressBuilder {
	return &PhysicalAddressBuilder{BaseBuilder: newBaseBuilder()}
}

// Line1 sets Line1 (max 500 characters).
func (b *PhysicalAddressBuilder) Line1(value string) *PhysicalAddressBuilder {
	b.setString("Line1", value, MaxAddressLineLength)
	return b
}

// Line2 sets Line2 (max 500 characters).
func (b *PhysicalAddressBuilder) Line2(value string) *PhysicalAddressBuilder {
	b.setString("Line2", value, MaxAddressLineLength)
	return b
}

// Line3 sets Line3 (max 500 characters).
func (b *PhysicalAddressBuilder) Line3(value string) *PhysicalAddressBuilder {
	b.setString("Line3", value, MaxAddressLineLength)
	return b
}

// Line4 sets Line4 (max 500 characters).
func (b *PhysicalAddressBuilder) Line4(value string) *PhysicalAddressBuilder {
	b.setString("Line4", value, MaxAddressLineLength)
	return b
}

// Line5 sets Line5 (max 500 characters).
func (b *PhysicalAddressBuilder) Line5(value string) *PhysicalAddressBuilder {
	b.setString("Line5", value, MaxAddressLineLength)
	return b
}

// City sets City (max 255 characters).
func (b *PhysicalAddressBuilder) City(value string) *PhysicalAddressBuilder {
	b.setString("City", value, MaxAddressCityLength)
	return b
}

// Country sets Country (max 255 characters).
func (b *PhysicalAddressBuilder) Country(value string) *PhysicalAddressBuilder {
	b.setString("Country", value, MaxAddressCountryLength)
	return b
}

// CountrySubDivisionCode sets the region, e.g. a US state code.
func (b *PhysicalAddressBuilder) CountrySubDivisionCode(value string) *PhysicalAddressBuilder {
	b.setString("CountrySubDivisionCode", value, MaxAddressRegionLength)
	return b
}

// PostalCode sets PostalCode (max 30 characters).
func (b *PhysicalAddressBuilder) PostalCode(value string) *PhysicalAddressBuilder {
	b.setString("PostalCode", value, MaxPostalCodeLength)
	return b
}

// Lat and Long are strings in the QBO schema.
func (b *PhysicalAddressBuilder) Lat(value string) *PhysicalAddressBuilder {
	b.set("Lat", value)
	return b
}

// Long sets Long.
func (b *PhysicalAddressBuilder) Long(value string) *PhysicalAddressBuilder {
	b.set("Long", value)
	return b
}

// TelephoneNumberBuilder builds a TelephoneNumber.
type TelephoneNumberBuilder struct {
	BaseBuilder
}

// NewTelephoneNumber returns an empty phone builder.
func NewTelephoneNumber() *TelephoneNumberBuilder {
	return &TelephoneNumberBuilder{BaseBuilder: newBaseBuilder()}
}

// FreeFormNumber sets the number as the user typed it, at most 21 characters.
func (b *TelephoneNumberBuilder) FreeFormNumber(value string) *TelephoneNumberBuilder {
	b.setString("FreeFormNumber", value, MaxPhoneNumberLength)
	return b
}

// EmailAddressBuilder builds an EmailAddress.
type EmailAddressBuilder struct {
	BaseBuilder
}

// NewEmailAddress returns an empty email builder.
func NewEmailAddress() *EmailAddressBuilder {
	return &EmailAddressBuilder{BaseBuilder: newBaseBuilder()}
}

// Address sets Address (max 100 characters).
func (b *EmailAddressBuilder) Address(value string) *EmailAddressBuilder {
	b.setString("Address", value, MaxEmailAddressLength)
	return b
}

// WebSiteAddressBuilder builds a WebSiteAddress.
type WebSiteAddressBuilder struct {
	BaseBuilder
}

// NewWebSiteAddress returns an empty web address builder.
func NewWebSiteAddress() *WebSiteAddressBuilder {
	return &WebSiteAddressBuilder{BaseBuilder: newBaseBuilder()}
}

// URI sets URI (max 1000 characters).
func (b *WebSiteAddressBuilder) URI(value string) *WebSiteAddressBuilder {
	b.setString("URI", value, MaxURILength)
	return b
}
