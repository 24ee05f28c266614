package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
)

func defaultSettings() config.CSVSettings {
	return config.CSVSettings{Delimiter: ",", HeaderRows: 1, DataStartRow: 2}
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")
	content := "\ufeffInvoiceNo,Customer,Amount\n1001,42,100\n1001,42,50\n\n1002,7,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := Parse(path, defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, path, table.SourceFile)
	assert.Equal(t, []string{"InvoiceNo", "Customer", "Amount"}, table.Headers)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, 2, table.Rows[0].Number)
	assert.Equal(t, "100", table.Rows[0].Get("Amount"))
	assert.Equal(t, 5, table.Rows[2].Number)
	assert.Equal(t, "", table.Rows[2].Get("Amount"))
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"), defaultSettings())
	assert.Error(t, err)
}

func TestParseReader_Delimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		input     string
	}{
		{"pipe", "A|B\n1|2\n"},
		{"tab", "A\tB\n1\t2\n"},
		{"\\t", "A\tB\n1\t2\n"},
		{";", "A;B\n1;2\n"},
		{",", "A, B\n1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			settings := defaultSettings()
			settings.Delimiter = tt.delimiter

			table, err := ParseReader(strings.NewReader(tt.input), settings)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B"}, table.Headers)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, map[string]string{"A": "1", "B": "2"}, table.Rows[0].Fields)
		})
	}
}

func TestParseReader_MultiRowHeaders(t *testing.T) {
	input := "Invoice,,Item\nNumber,Amount,Id\nskip,me,please\nINV-1,10.5,5\n"
	settings := config.CSVSettings{Delimiter: ",", HeaderRows: 2, DataStartRow: 4}

	table, err := ParseReader(strings.NewReader(input), settings)
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Number", "Amount", "Item Id"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 4, table.Rows[0].Number)
	assert.Equal(t, "INV-1", table.Rows[0].Get("Invoice Number"))
}

func TestParseReader_ShortRowsAndEmptyHeaders(t *testing.T) {
	input := "A,,C\n1\n,,\n2,3,4,5\n"

	table, err := ParseReader(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "Column_2", "C"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, map[string]string{"A": "1", "Column_2": "", "C": ""}, table.Rows[0].Fields)
	assert.Equal(t, "4", table.Rows[1].Get("C"))
}

func TestParseReader_QuotedMultilineKeepsStartLine(t *testing.T) {
	input := "Id,Memo\n1,\"first\nsecond\"\n2,plain\n"

	table, err := ParseReader(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "first\nsecond", table.Rows[0].Get("Memo"))
	assert.Equal(t, 2, table.Rows[0].Number)
	assert.Equal(t, 4, table.Rows[1].Number)
}

func TestParseReader_Comments(t *testing.T) {
	settings := defaultSettings()
	settings.Comment = "#"

	table, err := ParseReader(strings.NewReader("A\n# exported 2024-01-01\n1\n"), settings)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1", table.Rows[0].Get("A"))
}

func TestParseReader_Empty(t *testing.T) {
	_, err := ParseReader(strings.NewReader(""), defaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	settings := config.CSVSettings{Delimiter: ",", HeaderRows: 3, DataStartRow: 4}
	_, err = ParseReader(strings.NewReader("A\n1\n"), settings)
	assert.Error(t, err)
}
