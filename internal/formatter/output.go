// Package formatter writes processed records to an output stream.
package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"phonenorm/internal/models"

	"github.com/mattn/go-runewidth"
)

// Output formats.
const (
	FormatTSV   = "tsv"
	FormatTable = "table"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options selects the layout and number style.
type Options struct {
	Format string
	Style  string
}

// Write renders one line per result, in order.
func Write(w io.Writer, results []models.Result, opts Options) error {
	var lines []string

	switch opts.Format {
	case "", FormatTSV:
		lines = tsvLines(results, opts.Style)
	case FormatTable:
		lines = tableLines(results, opts.Style)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func tsvLines(results []models.Result, style string) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, r.RenderAs(style)+"\t"+r.Name)
	}

	return lines
}

// tableLines pads the number column to its widest display width so names
// line up even when invalid raw text contains wide characters.
func tableLines(results []models.Result, style string) []string {
	rendered := make([]string, len(results))
	width := 0

	for i, r := range results {
		rendered[i] = r.RenderAs(style)
		if w := runewidth.StringWidth(rendered[i]); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(results))
	for i, r := range results {
		var sb strings.Builder

		sb.WriteString(runewidth.FillRight(rendered[i], width))
		sb.WriteString("  ")
		sb.WriteString(r.Name)

		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return lines
}
