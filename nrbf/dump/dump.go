// Package dump renders a decoded nrbf.Value tree as a human-readable
// document. It is the "downstream inspection" consumer the core decoder
// names but deliberately does not implement itself: nrbf stays a pure
// decode library, and this package is one of possibly many presentations
// built on top of it.
package dump

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/jasperfirecai2/ngu-decoder/nrbf"
)

// YAML marshals a projected value tree into a YAML document. nrbf.Value's
// dynamic shape (map[string]any, []any, scalars) round-trips through
// yaml.v3's generic marshaling without any intermediate conversion.
func YAML(v nrbf.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("dump: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("dump: close YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Highlight runs a YAML document through a terminal256 syntax highlighter.
// style names any chroma style ("monokai", "github", ...); an empty string
// falls back to "monokai".
func Highlight(doc []byte, style string) (string, error) {
	if style == "" {
		style = "monokai"
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(doc), "yaml", "terminal256", style); err != nil {
		return "", fmt.Errorf("dump: highlight YAML: %w", err)
	}
	return buf.String(), nil
}

var sectionTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))

// Title renders a heading line for a dump document, e.g. the source file
// name, styled the same way regardless of which style Highlight used for
// the body.
func Title(s string) string {
	return sectionTitle.Render(s)
}

// FormatSize renders a raw 64-bit integer (a timespan/datetime tick count,
// a payload length, ...) with locale-aware digit grouping so large values
// stay legible in dumped output.
func FormatSize(n uint64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", n)
}

// Debug renders a value tree with spew instead of YAML: useful when a
// projection looks wrong and the maintainer needs to see the concrete Go
// type behind each scalar (int32 vs uint32, a stray *nrbf.Value indirection,
// ...), which YAML's generic scalar formatting hides.
func Debug(v nrbf.Value) string {
	return spew.Sdump(v)
}
