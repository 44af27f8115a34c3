// pkg/geom/geom.go - Flat-coordinate geometry types
package geom

// Stride is the number of numeric components per coordinate. Only plain
// 2D (x, y) coordinates are supported; there is no Z or M dimension.
const Stride = 2

// Type identifies the geometry encoded in a flat coordinate buffer and
// determines which shape of ends descriptor applies to it.
type Type string

const (
	TypePoint              Type = "Point"
	TypeLineString         Type = "LineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPoint         Type = "MultiPoint"
	TypeMultiLineString    Type = "MultiLineString"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
)

// Ends partitions a flat coordinate buffer into rings or line segments.
// It is a tagged variant: simple ends (one exclusive end offset per ring or
// line) are used for line strings and single polygons with holes, nested
// ends (one offset sequence per polygon) are used for multi-polygons. The
// variant in use is determined by the geometry type, never by inspecting
// the value itself.
type Ends struct {
	simple []int
	nested [][]int
}

// NewSimpleEnds returns an ends descriptor holding one exclusive end offset
// per ring or line.
func NewSimpleEnds(ends []int) Ends {
	return Ends{simple: ends}
}

// NewNestedEnds returns an ends descriptor holding one offset sequence per
// polygon of a multi-polygon.
func NewNestedEnds(endss [][]int) Ends {
	return Ends{nested: endss}
}

// Simple returns the flat offset sequence, or nil for the nested variant.
func (e Ends) Simple() []int {
	return e.simple
}

// Nested returns the per-polygon offset sequences, or nil for the simple
// variant.
func (e Ends) Nested() [][]int {
	return e.nested
}

// IsNested reports whether e holds the multi-polygon variant.
func (e Ends) IsNested() bool {
	return e.nested != nil
}
