// =============================================================================
// QBO Payload Converter - JSON Writer Module
// =============================================================================
//
// Renders built QBO requests into output files.
//
// OUTPUT MODES:
//   payload - one file per document holding the resource body:
//
//     {"CustomerRef": {"value": "42"}, "Line": [...]}
//
//   batch   - BatchItemRequest envelopes of up to 30 create operations,
//             each identified by a generated bId:
//
//     {"BatchItemRequest": [{"bId": "...", "operation": "create", "Invoice": {...}}]}
//
// Bodies keep the builders' field order. With indentation off they are
// written exactly as ToJSON renders them.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ginjaninja78/qbo-request-builder/internal/config"
	"github.com/ginjaninja78/qbo-request-builder/pkg/qbo"
	"github.com/ginjaninja78/qbo-request-builder/pkg/utils"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls rendering.
type Options struct {
	// Mode is config.OutputModePayload or config.OutputModeBatch.
	Mode string

	// Indent pretty-prints bodies with two spaces.
	Indent bool

	// FileFormat names output files; see utils.GenerateOutputFileName.
	FileFormat string
}

// DefaultOptions returns payload mode without indentation.
func DefaultOptions() Options {
	return Options{
		Mode:       config.OutputModePayload,
		FileFormat: "{profile}_{resource}_{uuid}.json",
	}
}

// OptionsFromConfig reads the output settings of the main configuration.
func OptionsFromConfig(cfg *config.MainConfig) Options {
	opts := DefaultOptions()
	if cfg.OutputMode != "" {
		opts.Mode = cfg.OutputMode
	}
	if cfg.OutputFileFormat != "" {
		opts.FileFormat = cfg.OutputFileFormat
	}
	opts.Indent = cfg.Indent
	return opts
}

// =============================================================================
// WRITER
// =============================================================================

// Output is one rendered file.
type Output struct {
	// Name is the file name, without directory.
	Name string

	// Resource is the QBO resource name, or "batch".
	Resource string

	// Items is the number of documents in the body.
	Items int

	Body []byte
}

// Writer renders and writes request bodies.
type Writer struct {
	opts  Options
	newID func() string
}

// New returns a Writer using opts.
func New(opts Options) *Writer {
	return &Writer{opts: opts, newID: uuid.NewString}
}

// Render turns resources into output bodies for profile without touching
// the filesystem.
func (w *Writer) Render(profile string, resources []qbo.Resource) ([]Output, error) {
	switch w.opts.Mode {
	case config.OutputModeBatch:
		return w.renderBatches(profile, resources)
	case config.OutputModePayload, "":
		return w.renderPayloads(profile, resources)
	}
	return nil, fmt.Errorf("unknown output mode %q", w.opts.Mode)
}

// Write renders resources and writes them to outputDir, returning the
// written paths. Existing files are never overwritten.
func (w *Writer) Write(outputDir, profile string, resources []qbo.Resource) ([]string, error) {
	outputs, err := w.Render(profile, resources)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := uniquePath(filepath.Join(outputDir, out.Name))
		if err := os.WriteFile(path, out.Body, 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) renderPayloads(profile string, resources []qbo.Resource) ([]Output, error) {
	outputs := make([]Output, 0, len(resources))
	for i, r := range resources {
		body, err := w.body(r)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		outputs = append(outputs, Output{
			Name:     w.fileName(profile, r.ResourceName()),
			Resource: r.ResourceName(),
			Items:    1,
			Body:     body,
		})
	}
	return outputs, nil
}

func (w *Writer) renderBatches(profile string, resources []qbo.Resource) ([]Output, error) {
	var outputs []Output
	for start := 0; start < len(resources); start += qbo.MaxBatchItems {
		chunk := resources[start:min(start+qbo.MaxBatchItems, len(resources))]

		batch := qbo.NewBatch()
		for _, r := range chunk {
			batch.AddCreate(w.newID(), r)
		}

		body, err := w.body(batch)
		if err != nil {
			return nil, fmt.Errorf("batch starting at document %d: %w", start+1, err)
		}
		outputs = append(outputs, Output{
			Name:     w.fileName(profile, batch.ResourceName()),
			Resource: batch.ResourceName(),
			Items:    batch.Len(),
			Body:     body,
		})
	}
	return outputs, nil
}

func (w *Writer) body(r qbo.Resource) ([]byte, error) {
	s, err := r.ToJSON()
	if err != nil {
		return nil, err
	}
	if !w.opts.Indent {
		return []byte(s), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent body: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (w *Writer) fileName(profile, resource string) string {
	return utils.GenerateOutputFileName(w.opts.FileFormat, map[string]string{
		"profile":  profile,
		"resource": resource,
	})
}

// uniquePath appends _2, _3, ... before the extension until path is free.
// Formats without {uuid} would otherwise overwrite earlier outputs.
func uniquePath(path string) string {
	if !utils.FileExists(path) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if !utils.FileExists(candidate) {
			return candidate
		}
	}
}
