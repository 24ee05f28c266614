package config

import (
	"fmt"
	"slices"

	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
)

// Resources a profile can produce.
const (
	ResourceInvoice      = "Invoice"
	ResourceSalesReceipt = "SalesReceipt"
	ResourcePayment      = "Payment"
)

// SupportedResources lists the valid values of ProfileConfig.Resource.
var SupportedResources = []string{ResourceInvoice, ResourceSalesReceipt, ResourcePayment}

// IsSupportedResource reports whether resource can be built from rows.
func IsSupportedResource(resource string) bool {
	return slices.Contains(SupportedResources, resource)
}

// FieldKind is how a mapped value is parsed before it reaches a builder.
type FieldKind int

const (
	KindText FieldKind = iota
	KindDecimal
	KindDate
	KindBoolean
)

func (k FieldKind) String() string {
	switch k {
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// FieldSpec describes a field key usable in field_mapping or static_fields.
type FieldSpec struct {
	Key  string
	Kind FieldKind

	// Line fields are read from every row of a document; the others from
	// the document's first row.
	Line bool
}

// Field keys.
const (
	FieldCustomerRef         = "customer_ref"
	FieldDocNumber           = "doc_number"
	FieldTxnDate             = "txn_date"
	FieldDueDate             = "due_date"
	FieldCustomerMemo        = "customer_memo"
	FieldPrivateNote         = "private_note"
	FieldBillEmail           = "bill_email"
	FieldCurrencyRef         = "currency_ref"
	FieldSalesTermRef        = "sales_term_ref"
	FieldPaymentMethodRef    = "payment_method_ref"
	FieldPaymentRefNum       = "payment_ref_num"
	FieldPaymentType         = "payment_type"
	FieldDepositToAccountRef = "deposit_to_account_ref"
	FieldARAccountRef        = "ar_account_ref"
	FieldTotalAmount         = "total_amount"

	FieldApplyTaxAfterDiscount        = "apply_tax_after_discount"
	FieldAllowOnlineCreditCardPayment = "allow_online_credit_card_payment"
	FieldAllowOnlineACHPayment        = "allow_online_ach_payment"

	FieldLineAmount      = "line_amount"
	FieldLineDescription = "line_description"
	FieldItemRef         = "item_ref"
	FieldItemName        = "item_name"
	FieldQty             = "qty"
	FieldUnitPrice       = "unit_price"
	FieldServiceDate     = "service_date"
	FieldTaxCodeRef      = "tax_code_ref"
	FieldLinkedTxnID     = "linked_txn_id"
	FieldLinkedTxnType   = "linked_txn_type"
)

var fields = []FieldSpec{
	{Key: FieldCustomerRef},
	{Key: FieldDocNumber},
	{Key: FieldTxnDate, Kind: KindDate},
	{Key: FieldDueDate, Kind: KindDate},
	{Key: FieldCustomerMemo},
	{Key: FieldPrivateNote},
	{Key: FieldBillEmail},
	{Key: FieldCurrencyRef},
	{Key: FieldSalesTermRef},
	{Key: FieldPaymentMethodRef},
	{Key: FieldPaymentRefNum},
	{Key: FieldPaymentType},
	{Key: FieldDepositToAccountRef},
	{Key: FieldARAccountRef},
	{Key: FieldTotalAmount, Kind: KindDecimal},

	{Key: FieldApplyTaxAfterDiscount, Kind: KindBoolean},
	{Key: FieldAllowOnlineCreditCardPayment, Kind: KindBoolean},
	{Key: FieldAllowOnlineACHPayment, Kind: KindBoolean},

	{Key: FieldLineAmount, Kind: KindDecimal, Line: true},
	{Key: FieldLineDescription, Line: true},
	{Key: FieldItemRef, Line: true},
	{Key: FieldItemName, Line: true},
	{Key: FieldQty, Kind: KindDecimal, Line: true},
	{Key: FieldUnitPrice, Kind: KindDecimal, Line: true},
	{Key: FieldServiceDate, Kind: KindDate, Line: true},
	{Key: FieldTaxCodeRef, Line: true},
	{Key: FieldLinkedTxnID, Line: true},
	{Key: FieldLinkedTxnType, Line: true},
}

// Fields returns every known field key specification.
func Fields() []FieldSpec {
	return slices.Clone(fields)
}

// LookupField returns the specification of key.
func LookupField(key string) (FieldSpec, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// RequiredFields lists the field keys a profile for resource must map or set
// statically.
func RequiredFields(resource string) []string {
	switch resource {
	case ResourceInvoice:
		return []string{FieldCustomerRef, FieldLineAmount, FieldItemRef}
	case ResourceSalesReceipt:
		return []string{FieldLineAmount, FieldItemRef}
	case ResourcePayment:
		return []string{FieldCustomerRef, FieldTotalAmount}
	default:
		return nil
	}
}

func validateStaticField(sf StaticField) error {
	spec, ok := LookupField(sf.Field)
	if !ok {
		return fmt.Errorf("static_fields: unknown field %q", sf.Field)
	}
	if spec.Kind == KindBoolean {
		if err := qbo.SanitizeBoolean(sf.Field, sf.Value); err != nil {
			return fmt.Errorf("static_fields: %w", err)
		}
		return nil
	}
	switch sf.Value.(type) {
	case string, int, float64:
		return nil
	default:
		return fmt.Errorf("static_fields: %q must be a scalar, got %T", sf.Field, sf.Value)
	}
}
