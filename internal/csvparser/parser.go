// =============================================================================
// QBO Payload Converter - CSV Parser Module
// =============================================================================
//
// Parses CSV exports into a types.Table. Handles:
//   - Different delimiters (comma, pipe, tab, semicolon)
//   - Multi-row headers, merged column by column
//   - A configurable data start row
//   - A leading UTF-8 byte order mark
//
// Row numbers in the result are source line numbers, so a record with a
// quoted multi-line field is reported at the line it starts on.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/internal/types"
)

const byteOrderMark = "\ufeff"

// Parse reads the CSV file at filePath.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	table, err := ParseReader(bufio.NewReader(file), settings)
	if err != nil {
		return nil, err
	}
	table.SourceFile = filePath
	return table, nil
}

// ParseReader parses CSV content from r.
func ParseReader(r io.Reader, settings config.CSVSettings) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	var (
		records [][]string
		lines   []int
	)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers, err := extractHeaders(records, settings.HeaderRows)
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	return &types.Table{
		Headers: headers,
		Rows:    extractDataRows(records, lines, headers, settings),
	}, nil
}

// configureReader applies the delimiter and comment settings. Rows may have
// differing field counts; short rows are padded with empty values.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	case "":
		reader.Comma = ','
	default:
		reader.Comma = []rune(settings.Delimiter)[0]
	}

	if settings.Comment != "" {
		reader.Comment = []rune(settings.Comment)[0]
	}

	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// extractHeaders merges the first headerRows records into one header per
// column, joining the non-empty parts with a space:
//
//	Row 1: "Invoice", "",       "Item"
//	Row 2: "Number",  "Amount", "Id"
//	=>     "Invoice Number", "Amount", "Item Id"
func extractHeaders(records [][]string, headerRows int) ([]string, error) {
	if headerRows <= 0 {
		return nil, fmt.Errorf("header_rows must be at least 1")
	}
	if len(records) < headerRows {
		return nil, fmt.Errorf("file has fewer rows than header_rows setting")
	}

	if headerRows == 1 {
		return cleanHeaders(records[0]), nil
	}

	maxCols := 0
	for i := 0; i < headerRows; i++ {
		maxCols = max(maxCols, len(records[i]))
	}

	headers := make([]string, maxCols)
	for col := 0; col < maxCols; col++ {
		var parts []string
		for row := 0; row < headerRows; row++ {
			if col < len(records[row]) {
				if value := strings.TrimSpace(records[row][col]); value != "" {
					parts = append(parts, value)
				}
			}
		}
		headers[col] = strings.Join(parts, " ")
	}

	return cleanHeaders(headers), nil
}

// cleanHeaders trims headers, drops a byte order mark and names empty
// headers Column_N.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(strings.TrimPrefix(header, byteOrderMark))
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

func extractDataRows(records [][]string, lines []int, headers []string, settings config.CSVSettings) []types.Row {
	startIndex := settings.DataStartRow - 1
	if startIndex < settings.HeaderRows {
		startIndex = settings.HeaderRows
	}
	if startIndex >= len(records) {
		return []types.Row{}
	}

	rows := make([]types.Row, 0, len(records)-startIndex)
	for i := startIndex; i < len(records); i++ {
		record := records[i]
		if isRowEmpty(record) {
			continue
		}
		rows = append(rows, types.Row{
			Number: lines[i],
			Fields: rowToMap(record, headers),
		})
	}
	return rows
}

func rowToMap(record, headers []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(record) {
			fields[header] = strings.TrimSpace(record[i])
		} else {
			fields[header] = ""
		}
	}
	return fields
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
