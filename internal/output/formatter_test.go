// internal/output/formatter_test.go - Unit tests for output formatting
package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"mvt-render-feature/internal/labels"
)

func anchorCollection() *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	anchor := geojson.NewFeature(orb.Point{5, 0})
	anchor.Properties["anchor"] = labels.AnchorLine
	collection.Append(anchor)
	return collection
}

func TestGeoJSONFormatter(t *testing.T) {
	formatter := NewGeoJSONFormatter(false, false)
	data, err := formatter.Format(anchorCollection(), nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("type = %v, want FeatureCollection", decoded["type"])
	}
	if formatter.ContentType() != "application/geo+json" {
		t.Errorf("ContentType() = %s", formatter.ContentType())
	}
}

func TestGeoJSONFormatterStats(t *testing.T) {
	formatter := NewGeoJSONFormatter(false, true)
	stats := &labels.Stats{FeatureCount: 1, AnchorCount: 1, Layers: []string{"roads"}}
	data, err := formatter.Format(anchorCollection(), stats)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "_stats") {
		t.Error("stats member missing from GeoJSON output")
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := NewJSONFormatter(true, true)
	stats := &labels.Stats{FeatureCount: 1, AnchorCount: 1}
	data, err := formatter.Format(anchorCollection(), stats)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["anchors"]; !ok {
		t.Error("anchors member missing from JSON output")
	}
	if _, ok := decoded["stats"]; !ok {
		t.Error("stats member missing from JSON output")
	}
}

func TestNewFormatterUnsupported(t *testing.T) {
	if _, err := NewFormatter(&WriterConfig{Format: "yaml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("geojson"); err != nil {
		t.Errorf("ParseFormat(geojson) failed: %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for invalid format")
	}
}
