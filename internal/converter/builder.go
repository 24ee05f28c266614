// =============================================================================
// QBO Payload Converter - Request Builder Mapping
// =============================================================================
//
// Maps one grouped document onto the qbo builder for the profile's resource.
//
// VALUE RESOLUTION:
//   A field's value comes from its mapped column on the row being read;
//   when the column is unmapped or the cell is empty, the profile's static
//   value is used. Header-level fields are read from the document's first
//   row, line fields from every row.
//
// ERRORS:
//   Builder failures are attributed to the row that produced them. A line
//   whose builder fails is left out of the document; the document itself is
//   reported as failed through the returned validation errors.
//
// =============================================================================

package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
	"github.com/ginjaninja78/qbo-request-builder/internal/validation"
	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
)

// BuiltDocument is a document together with the request built for it.
type BuiltDocument struct {
	Document types.Document
	Resource qbo.Resource
	Lines    int
}

// BuildDocument builds the request for doc. The returned errors describe
// every problem found; the resource is only usable when none are fatal.
func BuildDocument(profile *config.ProfileConfig, doc types.Document) (BuiltDocument, []*validation.ValidationError) {
	b := &documentBuilder{profile: profile, doc: doc}

	var resource qbo.Resource
	switch profile.Resource {
	case config.ResourceInvoice:
		resource = b.invoice()
	case config.ResourceSalesReceipt:
		resource = b.salesReceipt()
	case config.ResourcePayment:
		resource = b.payment()
	default:
		b.errs = append(b.errs, b.newError(doc.Header(), "resource", profile.Resource,
			fmt.Sprintf("unsupported resource '%s'", profile.Resource)))
		return BuiltDocument{Document: doc}, b.errs
	}

	b.errs = append(b.errs, validation.FromBuilder(doc, doc.Header(), resource.Err())...)
	return BuiltDocument{Document: doc, Resource: resource, Lines: b.lines}, b.errs
}

// documentBuilder carries the state of one BuildDocument call.
type documentBuilder struct {
	profile *config.ProfileConfig
	doc     types.Document
	errs    []*validation.ValidationError
	lines   int
}

// =============================================================================
// RESOURCES
// =============================================================================

func (b *documentBuilder) invoice() *qbo.InvoiceRequestBuilder {
	inv := qbo.NewInvoice()
	h := b.doc.Header()

	if v, ok := b.text(h, config.FieldCustomerRef); ok {
		inv.CustomerRef(qbo.CustomerRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldDocNumber); ok {
		inv.DocNumber(v)
	}
	if v, ok := b.date(h, config.FieldTxnDate); ok {
		inv.TxnDate(v)
	}
	if v, ok := b.date(h, config.FieldDueDate); ok {
		inv.DueDate(v)
	}
	if v, ok := b.text(h, config.FieldCustomerMemo); ok {
		inv.CustomerMemo(v)
	}
	if v, ok := b.text(h, config.FieldPrivateNote); ok {
		inv.PrivateNote(v)
	}
	if v, ok := b.text(h, config.FieldBillEmail); ok {
		inv.BillEmail(qbo.NewEmailAddress().Address(v))
	}
	if v, ok := b.text(h, config.FieldCurrencyRef); ok {
		inv.CurrencyRef(qbo.CurrencyRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldSalesTermRef); ok {
		inv.SalesTermRef(qbo.SalesTermRef().Value(v))
	}
	if v, ok := b.boolean(h, config.FieldApplyTaxAfterDiscount); ok {
		inv.ApplyTaxAfterDiscount(v)
	}
	if v, ok := b.boolean(h, config.FieldAllowOnlineCreditCardPayment); ok {
		inv.AllowOnlineCreditCardPayment(v)
	}
	if v, ok := b.boolean(h, config.FieldAllowOnlineACHPayment); ok {
		inv.AllowOnlineACHPayment(v)
	}

	for _, row := range b.doc.Rows {
		if line := b.salesLine(row); line != nil {
			inv.AddLine(line)
		}
	}
	return inv
}

func (b *documentBuilder) salesReceipt() *qbo.SalesReceiptRequestBuilder {
	sr := qbo.NewSalesReceipt()
	h := b.doc.Header()

	if v, ok := b.text(h, config.FieldCustomerRef); ok {
		sr.CustomerRef(qbo.CustomerRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldDocNumber); ok {
		sr.DocNumber(v)
	}
	if v, ok := b.date(h, config.FieldTxnDate); ok {
		sr.TxnDate(v)
	}
	if v, ok := b.text(h, config.FieldPaymentType); ok {
		switch v {
		case qbo.PaymentTypeCash:
			sr.PaymentTypeCash()
		case qbo.PaymentTypeCheck:
			sr.PaymentTypeCheck()
		case qbo.PaymentTypeCreditCard:
			sr.PaymentTypeCreditCard()
		case qbo.PaymentTypeOther:
			sr.PaymentTypeOther()
		default:
			err := qbo.SanitizeFromSet("PaymentType", v, qbo.PaymentTypes)
			b.errs = append(b.errs, validation.FromBuilder(b.doc, h, err)...)
		}
	}
	if v, ok := b.text(h, config.FieldPaymentMethodRef); ok {
		sr.PaymentMethodRef(qbo.PaymentMethodRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldPaymentRefNum); ok {
		sr.PaymentRefNum(v)
	}
	if v, ok := b.text(h, config.FieldDepositToAccountRef); ok {
		sr.DepositToAccountRef(qbo.AccountRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldBillEmail); ok {
		sr.BillEmail(qbo.NewEmailAddress().Address(v))
	}
	if v, ok := b.text(h, config.FieldCustomerMemo); ok {
		sr.CustomerMemo(v)
	}
	if v, ok := b.text(h, config.FieldPrivateNote); ok {
		sr.PrivateNote(v)
	}
	if v, ok := b.text(h, config.FieldCurrencyRef); ok {
		sr.CurrencyRef(qbo.CurrencyRef().Value(v))
	}

	for _, row := range b.doc.Rows {
		if line := b.salesLine(row); line != nil {
			sr.AddLine(line)
		}
	}
	return sr
}

func (b *documentBuilder) payment() *qbo.PaymentRequestBuilder {
	p := qbo.NewPayment()
	h := b.doc.Header()

	if v, ok := b.text(h, config.FieldCustomerRef); ok {
		p.CustomerRef(qbo.CustomerRef().Value(v))
	}
	total, hasTotal := b.decimal(h, config.FieldTotalAmount)
	if hasTotal {
		p.TotalAmount(total)
	}
	if v, ok := b.date(h, config.FieldTxnDate); ok {
		p.TransactionDate(v)
	}
	if v, ok := b.text(h, config.FieldPaymentRefNum); ok {
		p.PaymentRefNum(v)
	}
	if v, ok := b.text(h, config.FieldPaymentMethodRef); ok {
		p.PaymentMethodRef(qbo.PaymentMethodRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldDepositToAccountRef); ok {
		p.DepositToAccountRef(qbo.AccountRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldARAccountRef); ok {
		p.ARAccountRef(qbo.AccountRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldCurrencyRef); ok {
		p.CurrencyRef(qbo.CurrencyRef().Value(v))
	}
	if v, ok := b.text(h, config.FieldPrivateNote); ok {
		p.PrivateNote(v)
	}

	// Rows without a linked transaction leave the payment unapplied.
	for _, row := range b.doc.Rows {
		txnID, ok := b.text(row, config.FieldLinkedTxnID)
		if !ok {
			continue
		}

		line := qbo.NewPaymentLine()
		if amount, ok := b.decimal(row, config.FieldLineAmount); ok {
			line.Amount(amount)
		} else if hasTotal && len(b.doc.Rows) == 1 {
			line.Amount(total)
		}

		txnType, ok := b.text(row, config.FieldLinkedTxnType)
		if !ok {
			txnType = "Invoice"
		}
		line.AddLinkedTxn(qbo.NewLinkedTransaction().TxnId(txnID).TxnType(txnType))

		if b.addLine(row, line) {
			p.AddLine(line)
		}
	}
	return p
}

// salesLine builds a SalesItemLineDetail line from row, or returns nil when
// the line's builder failed.
func (b *documentBuilder) salesLine(row types.Row) *qbo.LineBuilder {
	line := qbo.NewSalesItemLine()

	if v, ok := b.decimal(row, config.FieldLineAmount); ok {
		line.Amount(v)
	}
	if v, ok := b.text(row, config.FieldLineDescription); ok {
		line.Description(v)
	}

	detail := qbo.NewSalesItemLineDetail()
	if v, ok := b.text(row, config.FieldItemRef); ok {
		ref := qbo.ItemRef().Value(v)
		if name, ok := b.text(row, config.FieldItemName); ok {
			ref.Name(name)
		}
		detail.ItemRef(ref)
	}
	if v, ok := b.decimal(row, config.FieldQty); ok {
		detail.Qty(v)
	}
	if v, ok := b.decimal(row, config.FieldUnitPrice); ok {
		detail.UnitPrice(v)
	}
	if v, ok := b.date(row, config.FieldServiceDate); ok {
		detail.ServiceDate(v)
	}
	if v, ok := b.text(row, config.FieldTaxCodeRef); ok {
		detail.TaxCodeRef(qbo.TaxCodeRef().Value(v))
	}
	line.SalesItemLineDetail(detail)

	if v, ok := b.text(row, config.FieldLinkedTxnID); ok {
		txn := qbo.NewLinkedTransaction().TxnId(v)
		if t, ok := b.text(row, config.FieldLinkedTxnType); ok {
			txn.TxnType(t)
		}
		line.AddLinkedTxn(txn)
	}

	if !b.addLine(row, line) {
		return nil
	}
	return line
}

// addLine records line's failures against row and reports whether the
// line can be added.
func (b *documentBuilder) addLine(row types.Row, line *qbo.LineBuilder) bool {
	if err := line.Err(); err != nil {
		for _, e := range validation.FromBuilder(b.doc, row, err) {
			e.Field = "Line." + e.Field
			b.errs = append(b.errs, e)
		}
		return false
	}
	b.lines++
	return true
}

// =============================================================================
// VALUE RESOLUTION
// =============================================================================

// text returns the value for key on row, falling back to the static value.
func (b *documentBuilder) text(row types.Row, key string) (string, bool) {
	if column, ok := b.profile.FieldMapping[key]; ok {
		if v := row.Get(column); v != "" {
			return v, true
		}
	}
	if v, ok := b.profile.Static(key); ok {
		s := strings.TrimSpace(fmt.Sprint(v))
		if f, isFloat := v.(float64); isFloat {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return s, s != ""
	}
	return "", false
}

func (b *documentBuilder) decimal(row types.Row, key string) (float64, bool) {
	if v, ok := b.profile.Static(key); ok && b.mappedValue(row, key) == "" {
		switch n := v.(type) {
		case float64:
			if !math.IsNaN(n) && !math.IsInf(n, 0) {
				return n, true
			}
		case int:
			return float64(n), true
		}
	}

	s, ok := b.text(row, key)
	if !ok {
		return 0, false
	}
	f, err := validation.ParseDecimal(s)
	if err != nil {
		b.errs = append(b.errs, b.newError(row, key, s, fmt.Sprintf("'%s' is not a valid decimal number", s)))
		return 0, false
	}
	return f, true
}

func (b *documentBuilder) date(row types.Row, key string) (time.Time, bool) {
	s, ok := b.text(row, key)
	if !ok {
		return time.Time{}, false
	}
	t, err := validation.ParseDate(s, b.profile.DateLayout)
	if err != nil {
		b.errs = append(b.errs, b.newError(row, key, s, fmt.Sprintf("'%s' is not a valid date", s)))
		return time.Time{}, false
	}
	return t, true
}

// boolean reads a static boolean field. Boolean fields cannot be mapped to
// columns.
func (b *documentBuilder) boolean(row types.Row, key string) (bool, bool) {
	v, ok := b.profile.Static(key)
	if !ok {
		return false, false
	}
	if err := qbo.SanitizeBoolean(key, v); err != nil {
		b.errs = append(b.errs, validation.FromBuilder(b.doc, row, err)...)
		return false, false
	}
	return v.(bool), true
}

func (b *documentBuilder) mappedValue(row types.Row, key string) string {
	if column, ok := b.profile.FieldMapping[key]; ok {
		return row.Get(column)
	}
	return ""
}

func (b *documentBuilder) newError(row types.Row, field, value, msg string) *validation.ValidationError {
	return &validation.ValidationError{
		Severity:      validation.SeverityError,
		Field:         field,
		Column:        b.profile.FieldMapping[field],
		Value:         value,
		Rule:          "mapping",
		Message:       msg,
		DocumentIndex: b.doc.Index,
		GroupKey:      b.doc.GroupKey,
		RowNumber:     row.Number,
	}
}
