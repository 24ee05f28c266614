package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
)

func TestDescribeSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	assert.Equal(t, "  sheets: Sheet1, Data (reading 'Sheet1')", describeSheets(path, &config.ProfileConfig{}))
	assert.Equal(t, "  sheets: Sheet1, Data (reading 'Data')", describeSheets(path, &config.ProfileConfig{SheetName: "Data"}))

	missing := describeSheets(filepath.Join(t.TempDir(), "nope.xlsx"), &config.ProfileConfig{})
	assert.Contains(t, missing, "failed to open workbook")
}
