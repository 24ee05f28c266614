// Package qbo builds JSON request bodies for the QuickBooks Online accounting
// API.
//
// Each builder wraps an ordered field mapping and exposes chained setters that
// write QBO field names exactly as the API expects them:
//
//	line := qbo.NewSalesItemLine().
//		Amount(100).
//		SalesItemLineDetail(qbo.NewSalesItemLineDetail().
//			ItemRef(qbo.ItemRef().Value("5")).
//			Qty(2).
//			UnitPrice(50))
//
//	invoice := qbo.NewInvoice().
//		AddLine(line).
//		CustomerRef(qbo.CustomerRef().Value("42"))
//
//	body, err := invoice.ToJSON()
//
// Setters validate before writing (length limits, fixed vocabularies). A
// rejected value is not written; the failure is kept on the builder and
// returned by Err and ToJSON.
//
// Nested builders are embedded by snapshot: changing a child after passing it
// to a parent does not change the parent.
//
// Builders are not safe for concurrent use. The package performs no I/O.
package qbo
