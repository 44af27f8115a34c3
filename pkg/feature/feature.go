// pkg/feature/feature.go - Read-only render feature with lazy derived geometry
package feature

import (
	"fmt"

	"mvt-render-feature/pkg/geom"
	"mvt-render-feature/pkg/proj"
)

// StyleFunc computes the style a feature should be rendered with at a given
// resolution. Render features never carry one; see StyleFunction.
type StyleFunc func(resolution float64) interface{}

// Styleable is the capability of supplying a per-feature style function.
// Implementations that do not support styling return ok == false.
type Styleable interface {
	StyleFunction() (StyleFunc, bool)
}

// RenderFeature is a lightweight, read-only feature representation for
// rendering map-tile vector data without materializing full geometry
// objects. Derived geometry (extent, interior points, midpoints) is
// computed lazily from the flat coordinate buffer and cached; the buffer
// is immutable for the feature's lifetime except for the in-place
// Transform, which resets the cache.
//
// A RenderFeature is not safe for concurrent use; callers sharing one
// across goroutines must serialize access themselves.
type RenderFeature struct {
	typ             geom.Type
	flatCoordinates []float64
	ends            geom.Ends
	properties      map[string]interface{}
	id              interface{}

	// Lazily populated; each slot is set at most once between transforms.
	extent             *geom.Extent
	flatInteriorPoints []float64
	flatMidpoints      []float64
}

// New creates a render feature from fully formed decoder output. The ends
// descriptor's variant must match the geometry type (simple for lines and
// polygons, nested for multi-polygons) and its offsets must be consistent
// with the buffer length; neither is validated here, mismatched input
// produces undefined derived results. Polygon rings are expected in
// right-handed winding.
func New(typ geom.Type, flatCoordinates []float64, ends geom.Ends, properties map[string]interface{}, id interface{}) *RenderFeature {
	return &RenderFeature{
		typ:             typ,
		flatCoordinates: flatCoordinates,
		ends:            ends,
		properties:      properties,
		id:              id,
	}
}

// Type returns the feature's geometry type.
func (f *RenderFeature) Type() geom.Type {
	return f.typ
}

// Stride returns the number of components per coordinate, always 2.
func (f *RenderFeature) Stride() int {
	return geom.Stride
}

// FlatCoordinates returns the feature's coordinate buffer. The buffer is
// shared, not copied; mutating it outside Transform is undefined.
func (f *RenderFeature) FlatCoordinates() []float64 {
	return f.flatCoordinates
}

// OrientedFlatCoordinates returns the coordinate buffer as-is. Right-handed
// ring winding is a decoder-provided invariant, so no reorientation is
// performed.
func (f *RenderFeature) OrientedFlatCoordinates() []float64 {
	return f.flatCoordinates
}

// Ends returns the flat end offsets for line and single-polygon features,
// or nil for the nested variant.
func (f *RenderFeature) Ends() []int {
	return f.ends.Simple()
}

// Endss returns the per-polygon end offsets for multi-polygon features, or
// nil for the simple variant.
func (f *RenderFeature) Endss() [][]int {
	return f.ends.Nested()
}

// ID returns the feature's stable identifier (a number or string), or nil.
func (f *RenderFeature) ID() interface{} {
	return f.id
}

// Get looks up a property by key. A missing key yields (nil, false), never
// an error.
func (f *RenderFeature) Get(key string) (interface{}, bool) {
	value, ok := f.properties[key]
	return value, ok
}

// Properties returns the feature's property map.
func (f *RenderFeature) Properties() map[string]interface{} {
	return f.properties
}

// Extent returns the feature's bounding extent, computing it on first call
// and serving the cached value afterwards.
func (f *RenderFeature) Extent() geom.Extent {
	if f.extent == nil {
		extent := geom.ExtentOfType(f.typ, f.flatCoordinates)
		f.extent = &extent
	}
	return *f.extent
}

// FlatInteriorPoint returns a label anchor inside a Polygon feature as a
// single flat coordinate pair, seeded at the extent center.
func (f *RenderFeature) FlatInteriorPoint() []float64 {
	if f.flatInteriorPoints == nil {
		centerX, centerY := f.Extent().Center()
		x, y := geom.InteriorPoint(f.flatCoordinates, 0, f.ends.Simple(), centerX, centerY)
		f.flatInteriorPoints = []float64{x, y}
	}
	return f.flatInteriorPoints
}

// FlatInteriorPoints returns one label anchor per polygon of a MultiPolygon
// feature as flat coordinate pairs in polygon order, each seeded at its
// polygon's extent center.
func (f *RenderFeature) FlatInteriorPoints() []float64 {
	if f.flatInteriorPoints == nil {
		endss := f.ends.Nested()
		centers := geom.PolygonCenters(f.flatCoordinates, endss)
		f.flatInteriorPoints = geom.InteriorPoints(f.flatCoordinates, endss, centers)
	}
	return f.flatInteriorPoints
}

// FlatMidpoint returns the half-length point of a LineString feature as a
// single flat coordinate pair.
func (f *RenderFeature) FlatMidpoint() []float64 {
	return f.FlatMidpoints()
}

// FlatMidpoints returns the half-length point of each line of a
// MultiLineString feature as flat coordinate pairs in line order.
func (f *RenderFeature) FlatMidpoints() []float64 {
	if f.flatMidpoints == nil {
		f.flatMidpoints = geom.Midpoints(f.flatCoordinates, f.ends.Simple())
	}
	return f.flatMidpoints
}

// Geometry returns the feature itself. Render features double as their own
// geometry for interface parity with the richer feature abstraction.
func (f *RenderFeature) Geometry() *RenderFeature {
	return f
}

// StyleFunction reports the styling capability. Render features never carry
// a style function, so the result is always (nil, false).
func (f *RenderFeature) StyleFunction() (StyleFunc, bool) {
	return nil, false
}

// Transform rescales the coordinate buffer in place from the source
// projection's pixel space onto its projected world extent and resets the
// derived-geometry cache. Both codes must resolve in the projection
// registry; an unknown code propagates the registry's error. The source
// must carry a world extent expressed in the destination's units (falling
// back to the destination's own world extent); when neither is available
// the call is a no-op, matching the permissive contract of the rest of the
// package.
//
// Transform is intended to run once per feature lifetime. Calling it again
// composes onto the already transformed coordinates; guarding against
// double application is the caller's responsibility.
func (f *RenderFeature) Transform(source, destination string) error {
	src, err := proj.Get(source)
	if err != nil {
		return fmt.Errorf("source projection: %w", err)
	}
	dst, err := proj.Get(destination)
	if err != nil {
		return fmt.Errorf("destination projection: %w", err)
	}

	worldExtent, ok := src.WorldExtent()
	if !ok {
		if worldExtent, ok = dst.WorldExtent(); !ok {
			return nil
		}
	}

	geom.PixelToWorld(src.Extent(), worldExtent).Apply(f.flatCoordinates)
	f.extent = nil
	f.flatInteriorPoints = nil
	f.flatMidpoints = nil
	return nil
}
