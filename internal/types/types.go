// =============================================================================
// QBO Payload Converter - Shared Types
// =============================================================================
//
// Types shared by the parsers, the converter, validation and the JSON writer.
// Keeping them here lets validation report on rows without importing the
// converter.
//
// =============================================================================

package types

// =============================================================================
// INPUT ROWS
// =============================================================================

// Table is a parsed input file: the resolved column headers plus the data
// rows in file order. CSV and XLSX inputs both parse into a Table.
type Table struct {
	// Headers are the cleaned column names, in column order.
	Headers []string

	// Rows are the non-empty data rows.
	Rows []Row

	// SourceFile is the path the table was read from.
	SourceFile string
}

// Row is one data row of an input file.
type Row struct {
	// Number is the 1-indexed row number in the source file, used in
	// error reports.
	Number int

	// Fields maps column header to (possibly transformed) cell value.
	Fields map[string]string
}

// Get returns the value of column, or "" when the column is absent.
func (r Row) Get(column string) string {
	if column == "" {
		return ""
	}
	return r.Fields[column]
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// Document is a group of rows that becomes one QBO request body. The first
// row supplies the header-level fields; every row contributes one line.
type Document struct {
	// Index is the 1-indexed position of the document in the input file.
	Index int

	// GroupKey is the value of the grouping column shared by all rows.
	GroupKey string

	// Rows belong to this document, in file order.
	Rows []Row
}

// Header returns the row that supplies header-level fields.
func (d Document) Header() Row {
	if len(d.Rows) == 0 {
		return Row{}
	}
	return d.Rows[0]
}
