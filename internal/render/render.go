// Package render prints wrangler result batches as user-facing notices.
// Row sets are dumped as indented JSON so field order and nesting come out
// exactly as the tool returned them.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"d1shell/cli/internal/executor"

	"github.com/pterm/pterm"
)

// Batches renders every result batch of one invocation.
func Batches(w io.Writer, batches []executor.Batch) {
	for _, b := range batches {
		Batch(w, b)
	}
}

// Batch renders one statement's outcome: a success notice with the row dump
// (or a no-results notice), or a failure notice. Metadata is appended only
// when non-empty.
func Batch(w io.Writer, b executor.Batch) {
	if !b.Success {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgRed).Sprint("❌ Query failed"))
		writeMeta(w, b)
		return
	}

	fmt.Fprintln(w, pterm.NewStyle(pterm.FgGreen).Sprint("✅ Query executed successfully"))
	if rows := b.Rows(); len(rows) == 0 {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgGray).Sprint("   (no results)"))
	} else {
		writeIndented(w, b.Results)
	}
	writeMeta(w, b)
}

func writeMeta(w io.Writer, b executor.Batch) {
	if !b.HasMeta() {
		return
	}
	fmt.Fprintln(w, pterm.NewStyle(pterm.FgLightCyan).Sprint("meta:"))
	writeIndented(w, b.Meta)
}

// writeIndented re-indents a raw JSON document without re-marshaling it,
// preserving the field order wrangler returned.
func writeIndented(w io.Writer, raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Fprintln(w, string(raw))
		return
	}
	fmt.Fprintln(w, buf.String())
}
