package adapter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mmcdole/artworks/internal/domain"
	"gopkg.in/yaml.v3"
)

var exportItems = []domain.Artwork{
	{ID: 1, Title: "Nighthawks", PlaceOfOrigin: "United States", ArtistDisplay: "Edward Hopper\nAmerican, 1882–1967", DateStart: 1942, DateEnd: 1942},
	{ID: 2, Title: "The Bedroom", PlaceOfOrigin: "France", ArtistDisplay: "Vincent van Gogh", DateStart: 1889, DateEnd: 1889},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestWriteArtworks_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArtworks(&buf, exportItems, FormatYAML, ExportMeta{Page: 3, TotalCount: 100}); err != nil {
		t.Fatalf("WriteArtworks() error = %v", err)
	}

	var doc struct {
		Page     int              `yaml:"page"`
		Count    int              `yaml:"count"`
		Artworks []domain.Artwork `yaml:"artworks"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if doc.Page != 3 || doc.Count != 2 || len(doc.Artworks) != 2 {
		t.Errorf("doc = %+v", doc)
	}
	if doc.Artworks[0].PlaceOfOrigin != "United States" {
		t.Errorf("place_of_origin = %q", doc.Artworks[0].PlaceOfOrigin)
	}
}

func TestWriteArtworks_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArtworks(&buf, nil, FormatJSON, ExportMeta{}); err != nil {
		t.Fatalf("WriteArtworks() error = %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	arr, ok := doc["artworks"].([]any)
	if !ok || len(arr) != 0 {
		t.Errorf("artworks = %v, want empty array", doc["artworks"])
	}
}

func TestWriteArtworks_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArtworks(&buf, exportItems, FormatTable, ExportMeta{Page: 1, TotalCount: 2}); err != nil {
		t.Fatalf("WriteArtworks() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Nighthawks", "Edward Hopper", "Vincent van Gogh", "Place of Origin"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "American, 1882") {
		t.Error("table should show only the artist name line")
	}
}

func TestClip(t *testing.T) {
	if got := clip("line one\nline two", 100); got != "line one line two" {
		t.Errorf("clip newline = %q", got)
	}
	if got := clip("Été à Paris, très long", 8); got != "Été à..." {
		t.Errorf("clip runes = %q", got)
	}
}
