// internal/output/formatter.go - Output formatting implementation
package output

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"mvt-render-feature/internal/labels"
)

// NewFormatter creates a formatter for the given configuration.
func NewFormatter(config *WriterConfig) (Formatter, error) {
	switch config.Format {
	case FormatGeoJSON:
		return NewGeoJSONFormatter(config.Pretty, config.Metadata), nil
	case FormatJSON:
		return NewJSONFormatter(config.Pretty, config.Metadata), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// GeoJSONFormatter serializes label anchors as a GeoJSON FeatureCollection.
type GeoJSONFormatter struct {
	pretty       bool
	includeStats bool
}

// NewGeoJSONFormatter creates a new GeoJSON formatter.
func NewGeoJSONFormatter(pretty, includeStats bool) *GeoJSONFormatter {
	return &GeoJSONFormatter{
		pretty:       pretty,
		includeStats: includeStats,
	}
}

// Format serializes the anchor collection. When stats are included they
// ride along as a foreign "_stats" member, which GeoJSON consumers ignore.
func (f *GeoJSONFormatter) Format(collection *geojson.FeatureCollection, stats *labels.Stats) ([]byte, error) {
	if collection == nil {
		return nil, fmt.Errorf("nil feature collection")
	}

	if f.includeStats && stats != nil {
		if collection.ExtraMembers == nil {
			collection.ExtraMembers = make(map[string]interface{})
		}
		collection.ExtraMembers["_stats"] = map[string]interface{}{
			"feature_count": stats.FeatureCount,
			"anchor_count":  stats.AnchorCount,
			"layers":        stats.Layers,
			"process_time":  stats.ProcessTime.String(),
		}
	}

	if f.pretty {
		return json.MarshalIndent(collection, "", "  ")
	}
	return json.Marshal(collection)
}

// ContentType returns the MIME type for GeoJSON.
func (f *GeoJSONFormatter) ContentType() string {
	return "application/geo+json"
}

// JSONFormatter serializes label anchors as a plain JSON envelope with the
// anchors and stats as separate members.
type JSONFormatter struct {
	pretty       bool
	includeStats bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(pretty, includeStats bool) *JSONFormatter {
	return &JSONFormatter{
		pretty:       pretty,
		includeStats: includeStats,
	}
}

// Format serializes the anchor collection inside a JSON envelope.
func (f *JSONFormatter) Format(collection *geojson.FeatureCollection, stats *labels.Stats) ([]byte, error) {
	if collection == nil {
		return nil, fmt.Errorf("nil feature collection")
	}

	envelope := map[string]interface{}{
		"anchors": collection,
	}
	if f.includeStats && stats != nil {
		envelope["stats"] = map[string]interface{}{
			"feature_count": stats.FeatureCount,
			"anchor_count":  stats.AnchorCount,
			"layers":        stats.Layers,
			"process_time":  stats.ProcessTime.String(),
		}
	}

	if f.pretty {
		return json.MarshalIndent(envelope, "", "  ")
	}
	return json.Marshal(envelope)
}

// ContentType returns the MIME type for JSON.
func (f *JSONFormatter) ContentType() string {
	return "application/json"
}
