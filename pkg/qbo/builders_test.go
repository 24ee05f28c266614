package qbo

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetters_ReturnSameInstance(t *testing.T) {
	account := NewAccount()
	assert.Same(t, account, account.Name("Checking").AccountTypeBank().Active(true))

	customer := NewCustomer()
	assert.Same(t, customer, customer.DisplayName("Acme").Taxable(false))

	invoice := NewInvoice()
	assert.Same(t, invoice, invoice.DocNumber("1001").AddLine(NewSalesItemLine().Amount(1)))

	ref := ItemRef()
	assert.Same(t, ref, ref.Value("5").Name("Widget"))
}

func TestSetters_ChainedEqualsSequential(t *testing.T) {
	chained := NewItem().Name("Widget").Sku("W-1").TypeService().UnitPrice(9.5)

	sequential := NewItem()
	sequential.Name("Widget")
	sequential.Sku("W-1")
	sequential.TypeService()
	sequential.UnitPrice(9.5)

	a, err := chained.ToJSON()
	require.NoError(t, err)
	b, err := sequential.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// lengthCase applies one string setter and reports the resulting builder
// state, so every limit can be checked at max and max+1.
type lengthCase struct {
	name  string
	field string
	max   int
	apply func(v string) (*Request, error)
}

func lengthCases() []lengthCase {
	return []lengthCase{
		{"Account.Name", "Name", MaxNameLength, func(v string) (*Request, error) {
			b := NewAccount().Name(v)
			return b.Request(), b.Err()
		}},
		{"Account.AcctNum", "AcctNum", MaxAcctNumLength, func(v string) (*Request, error) {
			b := NewAccount().AcctNum(v)
			return b.Request(), b.Err()
		}},
		{"Account.Description", "Description", MaxDescriptionLength, func(v string) (*Request, error) {
			b := NewAccount().Description(v)
			return b.Request(), b.Err()
		}},
		{"Customer.CompanyName", "CompanyName", MaxCompanyNameLength, func(v string) (*Request, error) {
			b := NewCustomer().CompanyName(v)
			return b.Request(), b.Err()
		}},
		{"Customer.DisplayName", "DisplayName", MaxDisplayNameLength, func(v string) (*Request, error) {
			b := NewCustomer().DisplayName(v)
			return b.Request(), b.Err()
		}},
		{"Customer.Title", "Title", MaxTitleLength, func(v string) (*Request, error) {
			b := NewCustomer().Title(v)
			return b.Request(), b.Err()
		}},
		{"Customer.Notes", "Notes", MaxNotesLength, func(v string) (*Request, error) {
			b := NewCustomer().Notes(v)
			return b.Request(), b.Err()
		}},
		{"Item.Name", "Name", MaxNameLength, func(v string) (*Request, error) {
			b := NewItem().Name(v)
			return b.Request(), b.Err()
		}},
		{"Item.Sku", "Sku", MaxSkuLength, func(v string) (*Request, error) {
			b := NewItem().Sku(v)
			return b.Request(), b.Err()
		}},
		{"Line.Description", "Description", MaxDescriptionLength, func(v string) (*Request, error) {
			b := NewSalesItemLine().Description(v)
			return b.Request(), b.Err()
		}},
		{"Invoice.DocNumber", "DocNumber", MaxDocNumberLength, func(v string) (*Request, error) {
			b := NewInvoice().DocNumber(v)
			return b.Request(), b.Err()
		}},
		{"Invoice.CustomerMemo", "CustomerMemo", MaxCustomerMemoLength, func(v string) (*Request, error) {
			b := NewInvoice().CustomerMemo(v)
			return b.Request(), b.Err()
		}},
		{"Invoice.PrivateNote", "PrivateNote", MaxPrivateNoteLength, func(v string) (*Request, error) {
			b := NewInvoice().PrivateNote(v)
			return b.Request(), b.Err()
		}},
		{"SalesReceipt.DocNumber", "DocNumber", MaxDocNumberLength, func(v string) (*Request, error) {
			b := NewSalesReceipt().DocNumber(v)
			return b.Request(), b.Err()
		}},
		{"Payment.PaymentRefNum", "PaymentRefNum", MaxPaymentRefNumLength, func(v string) (*Request, error) {
			b := NewPayment().PaymentRefNum(v)
			return b.Request(), b.Err()
		}},
		{"TelephoneNumber.FreeFormNumber", "FreeFormNumber", MaxPhoneNumberLength, func(v string) (*Request, error) {
			b := NewTelephoneNumber().FreeFormNumber(v)
			return b.Request(), b.Err()
		}},
		{"EmailAddress.Address", "Address", MaxEmailAddressLength, func(v string) (*Request, error) {
			b := NewEmailAddress().Address(v)
			return b.Request(), b.Err()
		}},
		{"WebSiteAddress.URI", "URI", MaxURILength, func(v string) (*Request, error) {
			b := NewWebSiteAddress().URI(v)
			return b.Request(), b.Err()
		}},
		{"PhysicalAddress.Line1", "Line1", MaxAddressLineLength, func(v string) (*Request, error) {
			b := NewPhysicalAddress().Line1(v)
			return b.Request(), b.Err()
		}},
		{"PhysicalAddress.City", "City", MaxAddressCityLength, func(v string) (*Request, error) {
			b := NewPhysicalAddress().City(v)
			return b.Request(), b.Err()
		}},
		{"PhysicalAddress.PostalCode", "PostalCode", MaxPostalCodeLength, func(v string) (*Request, error) {
			b := NewPhysicalAddress().PostalCode(v)
			return b.Request(), b.Err()
		}},
		{"TaxService.TaxCode", "TaxCode", MaxTaxCodeLength, func(v string) (*Request, error) {
			b := NewTaxService().TaxCode(v)
			return b.Request(), b.Err()
		}},
		{"TaxRateDetails.Name", "TaxRateName", MaxTaxRateNameLength, func(v string) (*Request, error) {
			b := NewTaxRateDetails().Name(v)
			return b.Request(), b.Err()
		}},
	}
}

func TestLengthLimits(t *testing.T) {
	for _, tc := range lengthCases() {
		t.Run(tc.name, func(t *testing.T) {
			req, err := tc.apply(strings.Repeat("a", tc.max))
			require.NoError(t, err)
			_, written := req.Get(tc.field)
			assert.True(t, written, "value of exactly %d characters should be written", tc.max)

			req, err = tc.apply(strings.Repeat("a", tc.max+1))
			require.Error(t, err)
			_, written = req.Get(tc.field)
			assert.False(t, written, "value of %d characters should be rejected", tc.max+1)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, tc.max, ve.Limit)
		})
	}
}

func TestFixedVocabularies(t *testing.T) {
	tests := []struct {
		name  string
		req   *Request
		field string
		want  string
	}{
		{"bank", NewAccount().AccountTypeBank().Request(), "AccountType", "Bank"},
		{"expense", NewAccount().AccountTypeExpense().Request(), "AccountType", "Expense"},
		{"receivable", NewAccount().AccountTypeReceivable().Request(), "AccountType", "Accounts Receivable"},
		{"sub receivable", NewAccount().AccountSubTypeReceivable().Request(), "AccountSubType", "AccountsReceivable"},
		{"sub service fee", NewAccount().AccountSubTypeServiceFeeIncome().Request(), "AccountSubType", "ServiceFeeIncome"},
		{"inventory", NewItem().TypeInventory().Request(), "Type", "Inventory"},
		{"service", NewItem().TypeService().Request(), "Type", "Service"},
		{"cash", NewSalesReceipt().PaymentTypeCash().Request(), "PaymentType", "Cash"},
		{"check", NewSalesReceipt().PaymentTypeCheck().Request(), "PaymentType", "Check"},
		{"credit card", NewSalesReceipt().PaymentTypeCreditCard().Request(), "PaymentType", "CreditCard"},
		{"other", NewSalesReceipt().PaymentTypeOther().Request(), "PaymentType", "Other"},
		{"sales", NewTaxRateDetails().ApplicableOnSales().Request(), "TaxApplicableOn", "Sales"},
		{"purchase", NewTaxRateDetails().ApplicableOnPurchase().Request(), "TaxApplicableOn", "Purchase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.req.Get(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkedTxnTypes(t *testing.T) {
	assert.Len(t, LinkedTxnTypes, 36)

	for _, txnType := range LinkedTxnTypes {
		b := NewLinkedTransaction().TxnType(txnType)
		assert.NoError(t, b.Err(), txnType)
		got, _ := b.Request().Get("TxnType")
		assert.Equal(t, txnType, got)
	}

	for _, bad := range []string{"Bogus", "invoice", ""} {
		b := NewLinkedTransaction().TxnType(bad)
		require.Error(t, b.Err(), "%q should be rejected", bad)
		_, written := b.Request().Get("TxnType")
		assert.False(t, written)

		var ve *ValidationError
		require.True(t, errors.As(b.Err(), &ve))
		assert.Equal(t, RuleSet, ve.Rule)
	}
}

func TestRefKinds_ShareShape(t *testing.T) {
	refs := map[RefKind]*RefBuilder{
		RefItem:          ItemRef(),
		RefCustomer:      CustomerRef(),
		RefAccount:       AccountRef(),
		RefTaxCode:       TaxCodeRef(),
		RefTaxRate:       TaxRateRef(),
		RefPaymentMethod: PaymentMethodRef(),
		RefCurrency:      CurrencyRef(),
		RefSalesTerm:     SalesTermRef(),
	}

	for kind, ref := range refs {
		assert.Equal(t, kind, ref.Kind())
		out, err := ref.Value("7").Name("Seven").ToJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"value": "7", "name": "Seven"}`, out)
	}
}

func TestPreSeededSequences(t *testing.T) {
	tests := []struct {
		name  string
		b     interface{ ToJSON() (string, error) }
		field string
	}{
		{"invoice", NewInvoice(), "Line"},
		{"sales receipt", NewSalesReceipt(), "Line"},
		{"payment", NewPayment(), "Line"},
		{"tax service", NewTaxService(), "TaxRateDetails"},
		{"transaction tax detail", NewTransactionTaxDetail(), "TaxLine"},
		{"payment line", NewPaymentLine(), "LinkedTxn"},
		{"batch", NewBatch(), "BatchItemRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.b.ToJSON()
			require.NoError(t, err)
			assert.Equal(t, `{"`+tt.field+`": []}`, out)
		})
	}
}

func TestAddLine_KeepsCallOrder(t *testing.T) {
	invoice := NewInvoice().
		AddLine(NewSalesItemLine().Description("A")).
		AddLine(NewSalesItemLine().Description("B"))

	lines, ok := invoice.Request().Get("Line")
	require.True(t, ok)
	require.Len(t, lines, 2)

	first, _ := lines.([]any)[0].(*Request).Get("Description")
	second, _ := lines.([]any)[1].(*Request).Get("Description")
	assert.Equal(t, "A", first)
	assert.Equal(t, "B", second)
}

func TestEmbedding_IsSnapshot(t *testing.T) {
	ref := CustomerRef().Value("42")
	invoice := NewInvoice().CustomerRef(ref)

	ref.Value("99")

	out, err := invoice.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"CustomerRef": {"value": "42"}`)

	line := NewSalesItemLine().Amount(10)
	invoice.AddLine(line)
	line.Amount(20)

	lines, _ := invoice.Request().Get("Line")
	amount, _ := lines.([]any)[0].(*Request).Get("Amount")
	assert.Equal(t, 10.0, amount)
}

func TestEmbedding_PropagatesChildErrors(t *testing.T) {
	email := NewEmailAddress().Address(strings.Repeat("e", MaxEmailAddressLength+1))
	customer := NewCustomer().DisplayName("Acme").PrimaryEmailAddr(email)

	_, written := customer.Request().Get("PrimaryEmailAddr")
	assert.False(t, written)

	require.Len(t, customer.Errors(), 1)
	assert.Equal(t, "PrimaryEmailAddr.Address", customer.Errors()[0].Field)

	customer.PrimaryEmailAddr(NewEmailAddress().Address("ok@example.com"))
	assert.NoError(t, customer.Err())
}

func TestLine_DetailErrorsArePrefixed(t *testing.T) {
	detail := NewSalesItemLineDetail().
		ItemRef(ItemRef().Value("5")).
		TaxCodeRef(TaxCodeRef().Value("TAX"))
	line := NewSalesItemLine().
		Amount(1).
		AddLinkedTxn(NewLinkedTransaction().TxnType("Nope")).
		SalesItemLineDetail(detail)

	require.Len(t, line.Errors(), 1)
	assert.Equal(t, "LinkedTxn.TxnType", line.Errors()[0].Field)

	invoice := NewInvoice().AddLine(line)
	require.Error(t, invoice.Err())
	assert.Equal(t, "Line.LinkedTxn.TxnType", invoice.Errors()[0].Field)

	lines, _ := invoice.Request().Get("Line")
	assert.Empty(t, lines)
}

func TestInvoice_EndToEnd(t *testing.T) {
	line := NewSalesItemLine().
		Amount(100).
		SalesItemLineDetail(NewSalesItemLineDetail().
			ItemRef(ItemRef().Value("5")).
			Qty(2).
			UnitPrice(50))

	invoice := NewInvoice().
		AddLine(line).
		CustomerRef(CustomerRef().Value("42"))

	out, err := invoice.ToJSON()
	require.NoError(t, err)

	assert.Contains(t, out, `"Line": [{"Amount": 100, "DetailType": "SalesItemLineDetail", "SalesItemLineDetail": {"ItemRef": {"value": "5"}, "Qty": 2, "UnitPrice": 50}}]`)
	assert.Contains(t, out, `"CustomerRef": {"value": "42"}`)
	assert.Equal(t, "Invoice", invoice.ResourceName())
}

func TestInvoice_FullDocument(t *testing.T) {
	txnDate := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	invoice := NewInvoice().
		CustomerRef(CustomerRef().Value("1")).
		DocNumber("INV-1").
		TxnDate(txnDate).
		DueDate(txnDate.AddDate(0, 0, 30)).
		CustomerMemo("Thanks").
		BillEmail(NewEmailAddress().Address("a@example.com")).
		TxnTaxDetail(NewTransactionTaxDetail().
			TxnTaxCodeRef(TaxCodeRef().Value("3")).
			TotalTax(8).
			AddTaxLine(NewTaxLine().
				Amount(8).
				TaxLineDetail(NewTaxLineDetail().
					TaxRateRef(TaxRateRef().Value("2")).
					PercentBased(true).
					TaxPercent(8).
					NetAmountTaxable(100)))).
		ApplyTaxAfterDiscount(false).
		AddLine(NewDiscountLine().
			Amount(5).
			DiscountLineDetail(NewDiscountLineDetail().PercentBased(true).DiscountPercent(5)))

	out, err := invoice.ToJSON()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "2024-03-01Z", parsed["TxnDate"])
	assert.Equal(t, "2024-03-31Z", parsed["DueDate"])
	assert.Equal(t, map[string]any{"value": "Thanks"}, parsed["CustomerMemo"])
	assert.Equal(t, false, parsed["ApplyTaxAfterDiscount"])

	lines := parsed["Line"].([]any)
	require.Len(t, lines, 1)
	assert.Equal(t, "DiscountLineDetail", lines[0].(map[string]any)["DetailType"])

	taxLines := parsed["TxnTaxDetail"].(map[string]any)["TaxLine"].([]any)
	require.Len(t, taxLines, 1)
	assert.Equal(t, "TaxLineDetail", taxLines[0].(map[string]any)["DetailType"])
}

func TestPayment_LinkedInvoice(t *testing.T) {
	payment := NewPayment().
		CustomerRef(CustomerRef().Value("20")).
		TotalAmount(55.5).
		TransactionDate(time.Date(2021, 6, 15, 23, 30, 0, 0, time.FixedZone("EST", -5*60*60))).
		AddLine(NewPaymentLine().
			Amount(55.5).
			AddLinkedTxn(NewLinkedTransaction().TxnId("129").TxnType("Invoice")))

	out, err := payment.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"Line": [{"LinkedTxn": [{"TxnId": "129", "TxnType": "Invoice"}], "Amount": 55.5}], "CustomerRef": {"value": "20"}, "TotalAmt": 55.5, "TxnDate": "2021-06-16Z"}`,
		out)
}

func TestSalesReceipt_Build(t *testing.T) {
	receipt := NewSalesReceipt().
		CustomerRef(CustomerRef().Value("3")).
		PaymentTypeCash().
		PaymentMethodRef(PaymentMethodRef().Value("1")).
		DepositToAccountRef(AccountRef().Value("35")).
		AddLine(NewSalesItemLine().
			Amount(35).
			SalesItemLineDetail(NewSalesItemLineDetail().ItemRef(ItemRef().Value("11").Name("Pump")).UnitPrice(35).Qty(1)))

	out, err := receipt.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"Line": [{"Amount": 35, "DetailType": "SalesItemLineDetail", "SalesItemLineDetail": {"ItemRef": {"value": "11", "name": "Pump"}, "UnitPrice": 35, "Qty": 1}}], "CustomerRef": {"value": "3"}, "PaymentType": "Cash", "PaymentMethodRef": {"value": "1"}, "DepositToAccountRef": {"value": "35"}}`,
		out)
}

func TestTaxService_Build(t *testing.T) {
	tax := NewTaxService().
		TaxCode("MyTaxCode").
		AddRateDetail(NewTaxRateDetails().Name("r1").Rate(10).AgencyID("1").ApplicableOnSales()).
		AddRateDetail(NewTaxRateDetails().RateID("3"))

	out, err := tax.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"TaxRateDetails": [{"TaxRateName": "r1", "RateValue": 10, "TaxAgencyId": "1", "TaxApplicableOn": "Sales"}, {"TaxRateId": "3"}], "TaxCode": "MyTaxCode"}`,
		out)
}

func TestItem_InventoryDates(t *testing.T) {
	item := NewItem().
		Name("Rock Fountain").
		TypeInventory().
		TrackQtyOnHand(true).
		QtyOnHand(10).
		InvStartDate(time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)).
		IncomeAccountRef(AccountRef().Value("79")).
		AssetAccountRef(AccountRef().Value("81"))

	out, err := item.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"Name": "Rock Fountain", "Type": "Inventory", "TrackQtyOnHand": true, "QtyOnHand": 10, "InvStartDate": "2015-01-01Z", "IncomeAccountRef": {"value": "79"}, "AssetAccountRef": {"value": "81"}}`,
		out)
}

func TestCustomer_ContactBlocks(t *testing.T) {
	customer := NewCustomer().
		DisplayName("King's Groceries").
		PrimaryPhone(NewTelephoneNumber().FreeFormNumber("(555) 555-5555")).
		WebAddr(NewWebSiteAddress().URI("https://example.com")).
		ShipAddr(NewPhysicalAddress().
			Line1("123 Main Street").
			City("Mountain View").
			CountrySubDivisionCode("CA").
			Country("USA").
			PostalCode("94042"))

	out, err := customer.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"DisplayName": "King's Groceries", "PrimaryPhone": {"FreeFormNumber": "(555) 555-5555"}, "WebAddr": {"URI": "https://example.com"}, "ShipAddr": {"Line1": "123 Main Street", "City": "Mountain View", "CountrySubDivisionCode": "CA", "Country": "USA", "PostalCode": "94042"}}`,
		out)
}
