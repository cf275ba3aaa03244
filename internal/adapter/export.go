package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mmcdole/artworks/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies an output encoding for artwork lists
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, yaml or json)", s)
	}
}

// exportDoc is the document written for yaml and json output
type exportDoc struct {
	Page       int              `json:"page,omitempty" yaml:"page,omitempty"`
	TotalCount int              `json:"total_count,omitempty" yaml:"total_count,omitempty"`
	Count      int              `json:"count" yaml:"count"`
	Artworks   []domain.Artwork `json:"artworks" yaml:"artworks"`
}

// ExportMeta carries optional page context for the written document
type ExportMeta struct {
	Page       int
	TotalCount int
}

// WriteArtworks writes the artworks to w in the given format
func WriteArtworks(w io.Writer, items []domain.Artwork, format Format, meta ExportMeta) error {
	doc := exportDoc{
		Page:       meta.Page,
		TotalCount: meta.TotalCount,
		Count:      len(items),
		Artworks:   items,
	}
	if doc.Artworks == nil {
		doc.Artworks = []domain.Artwork{}
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil

	case FormatTable, "":
		_, err := fmt.Fprintln(w, renderTable(items))
		if err != nil {
			return err
		}
		if meta.TotalCount > 0 {
			_, err = fmt.Fprintf(w, "page %d · %d records · %d total\n", meta.Page, len(items), meta.TotalCount)
		}
		return err

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderTable renders artworks as a bordered plain-text table
func renderTable(items []domain.Artwork) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Place of Origin", "Artist", "Inscriptions", "Start", "End").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, a := range items {
		t.Row(
			strconv.Itoa(a.ID),
			clip(a.Title, 40),
			clip(a.PlaceOfOrigin, 20),
			clip(a.ArtistName(), 30),
			clip(a.Inscriptions, 30),
			strconv.Itoa(a.DateStart),
			strconv.Itoa(a.DateEnd),
		)
	}

	return t.Render()
}

// clip flattens newlines and truncates to width runes
func clip(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
