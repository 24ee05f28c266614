// =============================================================================
// QBO Payload Converter - XLSX Parser
// =============================================================================
//
// Reads data rows from an XLSX workbook into a types.Table, using the same
// header and data start settings as CSV inputs.
//
// SHEET SELECTION:
//   The profile's sheet_name is read when set; otherwise the first sheet in
//   the workbook. Cell values are read as displayed, so a date cell formatted
//   as yyyy-mm-dd arrives as "2024-01-31".
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
)

// Parse reads sheetName (or the first sheet) of the workbook at filePath.
func Parse(filePath, sheetName string, settings config.CSVSettings) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	table, err := parseFile(f, sheetName, settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// ParseReader reads a workbook from r.
func ParseReader(r io.Reader, sheetName string, settings config.CSVSettings) (*types.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return parseFile(f, sheetName, settings)
}

// SheetNames lists the worksheets of the workbook at filePath.
func SheetNames(filePath string) ([]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func parseFile(f *excelize.File, sheetName string, settings config.CSVSettings) (*types.Table, error) {
	sheet, err := resolveSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	headerRows := max(settings.HeaderRows, 1)
	if len(rows) < headerRows {
		return nil, fmt.Errorf("sheet %q has fewer rows than header_rows setting", sheet)
	}
	headers := mergeHeaders(rows[:headerRows])

	startIndex := max(settings.DataStartRow-1, headerRows)

	table := &types.Table{Headers: headers, Rows: []types.Row{}}
	for i := startIndex; i < len(rows); i++ {
		row := rows[i]
		if isRowEmpty(row) {
			continue
		}

		fields := make(map[string]string, len(headers))
		for col, header := range headers {
			value := ""
			if col < len(row) {
				value = strings.TrimSpace(row[col])
			}
			fields[header] = value
		}

		// GetRows is 0-indexed; sheet rows start at 1.
		table.Rows = append(table.Rows, types.Row{Number: i + 1, Fields: fields})
	}

	return table, nil
}

func resolveSheet(f *excelize.File, sheetName string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if sheetName == "" {
		return sheets[0], nil
	}
	if !slices.Contains(sheets, sheetName) {
		return "", fmt.Errorf("sheet %q not found (have %s)", sheetName, strings.Join(sheets, ", "))
	}
	return sheetName, nil
}

// mergeHeaders joins multi-row headers column by column and names empty
// headers Column_N.
func mergeHeaders(headerRows [][]string) []string {
	maxCols := 0
	for _, row := range headerRows {
		maxCols = max(maxCols, len(row))
	}

	headers := make([]string, maxCols)
	for col := 0; col < maxCols; col++ {
		var parts []string
		for _, row := range headerRows {
			if col < len(row) {
				if v := strings.TrimSpace(row[col]); v != "" {
					parts = append(parts, v)
				}
			}
		}
		header := strings.Join(parts, " ")
		if header == "" {
			header = fmt.Sprintf("Column_%d", col+1)
		}
		headers[col] = header
	}
	return headers
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
