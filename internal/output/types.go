// internal/output/types.go - Output handling types
package output

import (
	"fmt"
	"io"

	"github.com/paulmach/orb/geojson"

	"mvt-render-feature/internal/labels"
)

// Format represents the output formats supported by the application.
type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatJSON    Format = "json"
)

// Writer defines the interface for writing extraction results to a
// destination.
type Writer interface {
	Write(collection *geojson.FeatureCollection, stats *labels.Stats) error
	Close() error
}

// Formatter defines the interface for serializing extraction results.
type Formatter interface {
	Format(collection *geojson.FeatureCollection, stats *labels.Stats) ([]byte, error)
	ContentType() string
}

// Destination represents an output sink (file, stdout).
type Destination interface {
	io.WriteCloser
	Name() string
}

// WriterConfig contains configuration for creating writers.
type WriterConfig struct {
	Format      Format
	Pretty      bool
	Compression bool
	Metadata    bool
}

// String returns a string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatGeoJSON, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a configuration string into a Format.
func ParseFormat(value string) (Format, error) {
	format := Format(value)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid output format: %s", value)
	}
	return format, nil
}
