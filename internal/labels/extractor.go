// internal/labels/extractor.go - Label anchor extraction from decoded tiles
package labels

import (
	"fmt"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"mvt-render-feature/pkg/feature"
	"mvt-render-feature/pkg/geom"
	"mvt-render-feature/pkg/mvt"
)

// Anchor kinds attached to extracted label points.
const (
	AnchorArea  = "area"
	AnchorLine  = "line"
	AnchorPoint = "point"
)

// Options configures label anchor extraction.
type Options struct {
	LayerFilter []string // only include the named layers when non-empty
	Simplify    bool     // Douglas-Peucker simplify lines before midpoint computation
	Tolerance   float64  // simplification tolerance in tile pixels
}

// Stats describes one extraction run.
type Stats struct {
	FeatureCount int
	AnchorCount  int
	Layers       []string
	ProcessTime  time.Duration
}

// Extractor derives label anchor points from the render features of a
// decoded tile: interior points for polygons, midpoints for lines and the
// coordinates themselves for points.
type Extractor struct {
	options *Options
}

// NewExtractor creates an extractor with default options.
func NewExtractor() *Extractor {
	return &Extractor{
		options: &Options{Tolerance: 1},
	}
}

// NewExtractorWithOptions creates an extractor with custom options.
func NewExtractorWithOptions(options *Options) (*Extractor, error) {
	if options == nil {
		return NewExtractor(), nil
	}
	if options.Tolerance < 0 {
		return nil, fmt.Errorf("invalid simplification tolerance: %v", options.Tolerance)
	}
	return &Extractor{options: options}, nil
}

// Extract walks the tile's layers in name order and returns one GeoJSON
// point feature per label anchor, carrying the source feature's properties
// plus the layer name and anchor kind.
func (e *Extractor) Extract(tile *mvt.DecodedTile) (*geojson.FeatureCollection, *Stats, error) {
	if tile == nil {
		return nil, nil, fmt.Errorf("nil tile")
	}

	start := time.Now()
	collection := geojson.NewFeatureCollection()
	stats := &Stats{}

	names := tile.LayerNames()
	sort.Strings(names)

	for _, name := range names {
		if len(e.options.LayerFilter) > 0 && !contains(e.options.LayerFilter, name) {
			continue
		}
		stats.Layers = append(stats.Layers, name)

		for _, f := range tile.Layers[name].Features {
			stats.FeatureCount++

			anchors, kind := e.anchors(f)
			for i := 0; i+1 < len(anchors); i += geom.Stride {
				anchor := geojson.NewFeature(orb.Point{anchors[i], anchors[i+1]})
				anchor.ID = f.ID()
				for key, value := range f.Properties() {
					anchor.Properties[key] = value
				}
				anchor.Properties["layer"] = name
				anchor.Properties["anchor"] = kind
				collection.Append(anchor)
				stats.AnchorCount++
			}
		}
	}

	stats.ProcessTime = time.Since(start)
	return collection, stats, nil
}

// anchors returns the flat anchor pairs for a single feature and the kind
// to tag them with. Unsupported geometry types yield no anchors.
func (e *Extractor) anchors(f *feature.RenderFeature) ([]float64, string) {
	switch f.Type() {
	case geom.TypePoint, geom.TypeMultiPoint:
		return f.FlatCoordinates(), AnchorPoint
	case geom.TypeLineString, geom.TypeMultiLineString:
		if e.options.Simplify {
			return e.simplifiedMidpoints(f), AnchorLine
		}
		return f.FlatMidpoints(), AnchorLine
	case geom.TypePolygon:
		return f.FlatInteriorPoint(), AnchorArea
	case geom.TypeMultiPolygon:
		return f.FlatInteriorPoints(), AnchorArea
	default:
		return nil, ""
	}
}

// simplifiedMidpoints runs Douglas-Peucker over each line of the feature
// before computing its midpoint, so dense lines anchor on their coarse
// shape rather than on vertex noise.
func (e *Extractor) simplifiedMidpoints(f *feature.RenderFeature) []float64 {
	coords := f.FlatCoordinates()
	simplifier := simplify.DouglasPeucker(e.options.Tolerance)

	midpoints := make([]float64, 0, len(f.Ends())*geom.Stride)
	offset := 0
	for _, end := range f.Ends() {
		line := make(orb.LineString, 0, (end-offset)/geom.Stride)
		for i := offset; i < end; i += geom.Stride {
			line = append(line, orb.Point{coords[i], coords[i+1]})
		}
		line = simplifier.LineString(line)

		flat := make([]float64, 0, len(line)*geom.Stride)
		for _, point := range line {
			flat = append(flat, point[0], point[1])
		}
		x, y := geom.InterpolatePoint(flat, 0, len(flat), 0.5)
		midpoints = append(midpoints, x, y)
		offset = end
	}
	return midpoints
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
