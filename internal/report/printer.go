// Package report turns report snapshots into printable output: Markdown for
// people, JSON for tooling. Printing in the terminal build means writing the
// document to stdout or to a file.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/entraops/internal/checklist"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Printer hands a report to some output.
type Printer interface {
	Print(ctx context.Context, r checklist.Report) error
}

// WriterPrinter writes the Markdown document to W.
type WriterPrinter struct {
	W io.Writer
}

func (p WriterPrinter) Print(ctx context.Context, r checklist.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(p.W, Markdown(r)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// FilePrinter writes the report to Path; the extension picks the format
// (.md/.markdown or .json).
type FilePrinter struct {
	Path string
}

func (p FilePrinter) Print(ctx context.Context, r checklist.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := Encode(r, p.Path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(p.Path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Encode serialises r in the format implied by path's extension.
func Encode(r checklist.Report, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return []byte(Markdown(r)), nil
	case ".json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// PrinterFor returns a FilePrinter for a non-empty path, else a WriterPrinter on w.
func PrinterFor(path string, w io.Writer) Printer {
	if path == "" {
		return WriterPrinter{W: w}
	}
	return FilePrinter{Path: path}
}
