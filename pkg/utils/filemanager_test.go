package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *FileManager {
	t.Helper()
	root := t.TempDir()
	fm := NewFileManager(filepath.Join(root, "in"), filepath.Join(root, "out"), filepath.Join(root, "archive"))
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestManager(t)
	for _, name := range []string{"b.CSV", "a.xlsx", "notes.txt", "~$a.xlsx", ".hidden.csv"} {
		touch(t, filepath.Join(fm.InputDir, name), "x")
	}
	require.NoError(t, os.Mkdir(filepath.Join(fm.InputDir, "sub.csv"), 0755))

	files, err := fm.DiscoverInputFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(fm.InputDir, "a.xlsx"),
		filepath.Join(fm.InputDir, "b.CSV"),
	}, files)
}

func TestArchiveInputFile(t *testing.T) {
	fm := newTestManager(t)
	fm.now = func() time.Time { return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC) }

	src := filepath.Join(fm.InputDir, "batch.csv")
	touch(t, src, "first")
	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "batch.csv"), archived)
	assert.NoFileExists(t, src)

	touch(t, src, "second")
	again, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "batch_20240115_103000.000000000.csv"), again)

	data, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestArchiveInputFile_TimestampSubdirs(t *testing.T) {
	fm := newTestManager(t)
	fm.UseTimestampSubdirs = true
	fm.now = func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) }

	src := filepath.Join(fm.InputDir, "a.csv")
	touch(t, src, "x")
	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "2024", "03", "05", "a.csv"), archived)

	fm.ArchiveOnSuccess = false
	touch(t, src, "x")
	kept, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, src, kept)
	assert.FileExists(t, src)
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName("{profile}_{resource}_{uuid}", map[string]string{"profile": "AR", "resource": "Invoice"})
	assert.Regexp(t, regexp.MustCompile(`^AR_Invoice_[0-9a-f-]{36}\.json$`), name)

	assert.Equal(t, "fixed.JSON", GenerateOutputFileName("fixed.JSON", nil))
	assert.NotEqual(t,
		GenerateOutputFileName("{uuid}", nil),
		GenerateOutputFileName("{uuid}", nil))
}

func TestWriteErrorLog(t *testing.T) {
	fm := newTestManager(t)

	path, err := WriteErrorLog(nil, fm.OutputDir, "in/a.csv")
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = WriteErrorLog([]ErrorLogEntry{{
		Timestamp:     time.Now(),
		FileName:      "a.csv",
		ErrorType:     "error/decimal",
		ErrorMessage:  "'ten' is not a valid decimal number",
		RowNumber:     4,
		FieldName:     "line_amount",
		FieldValue:    "ten",
		DocumentIndex: 2,
		GroupKey:      "1002",
	}}, fm.OutputDir, "in/a.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "error_log_a_"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, want := range []string{
		"Total Errors: 1",
		"Error Type:     error/decimal",
		"Document:       2",
		"Group Key:      1002",
		"Row Number:     4",
		"Value:          ten",
	} {
		assert.Contains(t, string(data), want)
	}
}

func TestWriteSummaryLog(t *testing.T) {
	fm := newTestManager(t)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	path, err := WriteSummaryLog(ProcessingSummary{
		StartTime:       start,
		EndTime:         start.Add(2 * time.Second),
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		TotalDocuments:  3,
		ProcessedFiles: []ProcessedFileInfo{{
			InputFile:   "a.csv",
			OutputFiles: []string{"out/AR_Invoice_1.json", "out/AR_Invoice_2.json"},
			Documents:   3,
		}},
		FailedFilesList: []FailedFileInfo{{InputFile: "b.csv", ErrorMessage: "boom", ErrorLog: "out/error_log_b.txt"}},
	}, fm.OutputDir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Duration:       2s")
	assert.Contains(t, out, "Total Documents:    3")
	assert.Contains(t, out, "Output:       out/AR_Invoice_2.json")
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "Log:   out/error_log_b.txt")
}
