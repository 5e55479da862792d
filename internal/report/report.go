// Package report prints the operator-facing summary of a generation run.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/starford/txtindex/internal/manifest"
)

// Writer formats run summaries for the console.
// Errors from writing are intentionally ignored for console output.
type Writer struct {
	out io.Writer
}

// New creates a new Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format+"\n", args...)
}

// Result prints the summary matching res.Outcome.
func (w *Writer) Result(res *manifest.Result) {
	dir := filepath.ToSlash(filepath.Clean(res.Layout.DataDir))
	switch res.Outcome {
	case manifest.OutcomeCreatedDataDir:
		w.line("📁 Created %s/ — drop your %s files here and re-run.", dir, res.Layout.Suffix)
	case manifest.OutcomeNothingToIndex:
		w.line("ℹ️  No %s files found in %s/ — nothing to index.", res.Layout.Suffix, dir)
	case manifest.OutcomeWritten:
		w.written(res)
	}
}

func (w *Writer) written(res *manifest.Result) {
	n := len(res.Items)
	w.line("✅ Generated index with %d items (version %d)", n, res.Version)
	w.line("   %s → version: %d", res.Layout.MetaFile, res.Version)
	w.line("   %s → %d items", res.Layout.IndexFile, n)
	for _, it := range res.Items {
		w.line("     - [%s] %s → %s", it.ID, it.Label, it.Path)
	}

	w.line("")
	w.line("🚀 Now commit & push:")
	for _, cmd := range GitCommands(n) {
		w.line("   %s", cmd)
	}
}

// GitCommands returns the commands the operator runs to publish a
// regenerated index of n items. They are printed, never executed.
func GitCommands(n int) []string {
	return []string{
		"git add .",
		fmt.Sprintf("git commit -m \"Update %d items\"", n),
		"git push",
	}
}
