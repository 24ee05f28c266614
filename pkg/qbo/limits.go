package qbo

// Maximum field lengths enforced by the setters, in characters.
const (
	MaxNameLength           = 100
	MaxAcctNumLength        = 7
	MaxDescriptionLength    = 4000
	MaxCompanyNameLength    = 50
	MaxDisplayNameLength    = 100
	MaxPersonNameLength     = 100
	MaxTitleLength          = 16
	MaxSuffixLength         = 16
	MaxPrintOnCheckLength   = 110
	MaxNotesLength          = 2000
	MaxDocNumberLength      = 21
	MaxPaymentRefNumLength  = 21
	MaxPhoneNumberLength    = 21
	MaxEmailAddressLength   = 100
	MaxURILength            = 1000
	MaxCustomerMemoLength   = 1000
	MaxPrivateNoteLength    = 4000
	MaxAddressLineLength    = 500
	MaxAddressCityLength    = 255
	MaxAddressCountryLength = 255
	MaxAddressRegionLength  = 255
	MaxPostalCodeLength     = 30
	MaxSkuLength            = 100
	MaxTaxCodeLength        = 100
	MaxTaxRateNameLength    = 100
)
