package converter

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
)

func doc(rows ...map[string]string) types.Document {
	d := types.Document{Index: 1, GroupKey: "G1"}
	for i, fields := range rows {
		d.Rows = append(d.Rows, types.Row{Number: i + 2, Fields: fields})
	}
	return d
}

func TestBuildDocument_Invoice(t *testing.T) {
	profile := &config.ProfileConfig{
		Resource: config.ResourceInvoice,
		FieldMapping: map[string]string{
			config.FieldCustomerRef: "Customer",
			config.FieldDocNumber:   "Invoice",
			config.FieldTxnDate:     "Date",
			config.FieldItemRef:     "Item",
			config.FieldItemName:    "ItemName",
			config.FieldLineAmount:  "Amount",
			config.FieldUnitPrice:   "Price",
		},
		StaticFields: []config.StaticField{
			{Field: config.FieldSalesTermRef, Value: 3},
			{Field: config.FieldAllowOnlineACHPayment, Value: true},
		},
	}

	built, errs := BuildDocument(profile, doc(
		map[string]string{"Customer": "42", "Invoice": "1001", "Date": "2024-01-31", "Item": "5", "ItemName": "Hours", "Amount": "$1,000", "Price": "125"},
		map[string]string{"Customer": "42", "Invoice": "1001", "Date": "2024-01-31", "Item": "6", "Amount": "20"},
	))
	require.Empty(t, errs)
	assert.Equal(t, 2, built.Lines)

	body, err := built.Resource.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Line": [`+
		`{"Amount": 1000, "DetailType": "SalesItemLineDetail", "SalesItemLineDetail": {"ItemRef": {"value": "5", "name": "Hours"}, "UnitPrice": 125}}, `+
		`{"Amount": 20, "DetailType": "SalesItemLineDetail", "SalesItemLineDetail": {"ItemRef": {"value": "6"}}}], `+
		`"CustomerRef": {"value": "42"}, "DocNumber": "1001", "TxnDate": "2024-01-31Z", "SalesTermRef": {"value": "3"}, "AllowOnlineACHPayment": true}`,
		body)
}

func TestBuildDocument_SalesReceipt(t *testing.T) {
	profile := &config.ProfileConfig{
		Resource: config.ResourceSalesReceipt,
		FieldMapping: map[string]string{
			config.FieldPaymentType: "Paid By",
			config.FieldLineAmount:  "Amount",
			config.FieldItemRef:     "Item",
		},
		StaticFields: []config.StaticField{{Field: config.FieldDepositToAccountRef, Value: "35"}},
	}

	built, errs := BuildDocument(profile, doc(map[string]string{"Paid By": "Check", "Amount": "9.99", "Item": "1"}))
	require.Empty(t, errs)

	body, err := built.Resource.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Line": [{"Amount": 9.99, "DetailType": "SalesItemLineDetail", "SalesItemLineDetail": {"ItemRef": {"value": "1"}}}], `+
		`"PaymentType": "Check", "DepositToAccountRef": {"value": "35"}}`, body)
}

func TestBuildDocument_Payment(t *testing.T) {
	profile := &config.ProfileConfig{
		Resource: config.ResourcePayment,
		FieldMapping: map[string]string{
			config.FieldCustomerRef: "Customer",
			config.FieldTotalAmount: "Total",
			config.FieldTxnDate:     "Date",
			config.FieldLinkedTxnID: "Invoice",
			config.FieldLineAmount:  "Applied",
		},
	}

	t.Run("single row takes the total", func(t *testing.T) {
		built, errs := BuildDocument(profile, doc(map[string]string{"Customer": "20", "Total": "55.5", "Date": "2021-06-16", "Invoice": "129"}))
		require.Empty(t, errs)

		body, err := built.Resource.ToJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"Line": [{"LinkedTxn": [{"TxnId": "129", "TxnType": "Invoice"}], "Amount": 55.5}], `+
			`"CustomerRef": {"value": "20"}, "TotalAmt": 55.5, "TxnDate": "2021-06-16Z"}`, body)
	})

	t.Run("several rows apply their own amounts", func(t *testing.T) {
		built, errs := BuildDocument(profile, doc(
			map[string]string{"Customer": "20", "Total": "30", "Invoice": "1", "Applied": "10"},
			map[string]string{"Customer": "20", "Total": "30", "Invoice": "2", "Applied": "20"},
			map[string]string{"Customer": "20", "Total": "30"},
		))
		require.Empty(t, errs)
		assert.Equal(t, 2, built.Lines)

		body, err := built.Resource.ToJSON()
		require.NoError(t, err)
		assert.Contains(t, body, `{"LinkedTxn": [{"TxnId": "2", "TxnType": "Invoice"}], "Amount": 20}`)
	})
}

func TestBuildDocument_ErrorsAttributedToRows(t *testing.T) {
	profile := &config.ProfileConfig{
		Resource: config.ResourceInvoice,
		FieldMapping: map[string]string{
			config.FieldDocNumber:   "Invoice",
			config.FieldLineAmount:  "Amount",
			config.FieldItemRef:     "Item",
			config.FieldLinkedTxnID: "Estimate",
		},
		StaticFields: []config.StaticField{
			{Field: config.FieldLinkedTxnType, Value: "Bogus"},
			{Field: config.FieldApplyTaxAfterDiscount, Value: "yes"},
		},
	}

	_, errs := BuildDocument(profile, doc(
		map[string]string{"Invoice": strings.Repeat("1", 22), "Amount": "1", "Item": "1"},
		map[string]string{"Invoice": "x", "Amount": "1", "Item": "1", "Estimate": "77"},
	))

	fields := map[string]int{}
	for _, e := range errs {
		fields[e.Field] = e.RowNumber
	}
	assert.Equal(t, map[string]int{
		config.FieldApplyTaxAfterDiscount: 2,
		"Line.LinkedTxn.TxnType":          3,
		"DocNumber":                       2,
	}, fields)
}

func TestBuildDocument_UnsupportedResource(t *testing.T) {
	built, errs := BuildDocument(&config.ProfileConfig{Resource: "Bill"}, doc(map[string]string{}))
	require.Len(t, errs, 1)
	assert.Nil(t, built.Resource)
	assert.Contains(t, errs[0].Message, "unsupported resource 'Bill'")
}

func TestBuildDocument_NonFiniteAmountsAreRowErrors(t *testing.T) {
	profile := &config.ProfileConfig{
		Resource: config.ResourceInvoice,
		FieldMapping: map[string]string{
			config.FieldCustomerRef: "Customer",
			config.FieldLineAmount:  "Amount",
			config.FieldItemRef:     "Item",
		},
		StaticFields: []config.StaticField{{Field: config.FieldLineAmount, Value: math.NaN()}},
	}

	built, errs := BuildDocument(profile, doc(
		map[string]string{"Customer": "1", "Amount": "", "Item": "1"},
		map[string]string{"Customer": "1", "Amount": "-Inf", "Item": "1"},
		map[string]string{"Customer": "1", "Amount": "10", "Item": "1"},
	))

	require.Len(t, errs, 2)
	assert.Equal(t, config.FieldLineAmount, errs[0].Field)
	assert.Equal(t, 2, errs[0].RowNumber)
	assert.Contains(t, errs[0].Message, "'NaN'")
	assert.Equal(t, 3, errs[1].RowNumber)
	assert.Equal(t, "-Inf", errs[1].Value)

	require.NotNil(t, built.Resource)
	_, err := built.Resource.ToJSON()
	assert.NoError(t, err)
}
