// pkg/geom/extent.go - Axis-aligned bounding extent calculation
package geom

import "math"

// Extent is an axis-aligned bounding box stored as [minX, minY, maxX, maxY].
type Extent [4]float64

// NewExtent creates an extent from its four corner ordinates.
func NewExtent(minX, minY, maxX, maxY float64) Extent {
	return Extent{minX, minY, maxX, maxY}
}

// EmptyExtent returns an extent that any coordinate extends.
func EmptyExtent() Extent {
	return Extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (e Extent) MinX() float64 { return e[0] }
func (e Extent) MinY() float64 { return e[1] }
func (e Extent) MaxX() float64 { return e[2] }
func (e Extent) MaxY() float64 { return e[3] }

// Width returns the horizontal span of the extent.
func (e Extent) Width() float64 {
	return e[2] - e[0]
}

// Height returns the vertical span of the extent.
func (e Extent) Height() float64 {
	return e[3] - e[1]
}

// Center returns the midpoint of the extent.
func (e Extent) Center() (float64, float64) {
	return (e[0] + e[2]) / 2, (e[1] + e[3]) / 2
}

// ContainsXY reports whether the point (x, y) lies within the extent,
// boundary included.
func (e Extent) ContainsXY(x, y float64) bool {
	return e[0] <= x && x <= e[2] && e[1] <= y && y <= e[3]
}

// Extend returns the smallest extent covering both e and other.
func (e Extent) Extend(other Extent) Extent {
	return Extent{
		math.Min(e[0], other[0]),
		math.Min(e[1], other[1]),
		math.Max(e[2], other[2]),
		math.Max(e[3], other[3]),
	}
}

// ExtentOf scans a flat coordinate buffer at stride 2 and returns the
// extent bounding every (x, y) pair. The buffer must be non-empty; that is
// an upstream decoder contract and is not checked here.
func ExtentOf(coords []float64) Extent {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(coords); i += Stride {
		if coords[i] < minX {
			minX = coords[i]
		}
		if coords[i] > maxX {
			maxX = coords[i]
		}
		if coords[i+1] < minY {
			minY = coords[i+1]
		}
		if coords[i+1] > maxY {
			maxY = coords[i+1]
		}
	}
	return Extent{minX, minY, maxX, maxY}
}

// ExtentOfType returns the extent of a flat coordinate buffer holding a
// geometry of the given type. A point degenerates to a zero-area box at its
// single coordinate pair; every other type is a full buffer scan.
func ExtentOfType(t Type, coords []float64) Extent {
	if t == TypePoint {
		return Extent{coords[0], coords[1], coords[0], coords[1]}
	}
	return ExtentOf(coords)
}
