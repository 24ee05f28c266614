// =============================================================================
// QBO Payload Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   qbo-convert process   - Convert all input files in the input directory
//   qbo-convert validate  - Check configuration and inputs without writing
//   qbo-convert watch     - Convert files as they arrive
//   qbo-convert version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : conversion pipeline (config, parsers, validation,
//                  converter, JSON writer, watcher)
//   - pkg/qbo    : QuickBooks Online request builders
//   - pkg/utils  : file management and reports
//   - configs/   : profile configurations
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/qbo-request-builder/cmd"
)

func main() {
	cmd.Execute()
}
