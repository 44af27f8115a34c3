// pkg/geom/interior.go - Interior point calculation for polygon labelling
package geom

import (
	"math"
	"sort"
)

// scanOffsets are the fractions of the rings' vertical span at which
// candidate scan-lines are evaluated, nearest to the seed center first.
var scanOffsets = []float64{0, 1.0 / 8, -1.0 / 8, 1.0 / 4, -1.0 / 4, 3.0 / 8, -3.0 / 8}

// InteriorPoint returns a point inside the polygon whose rings are stored
// in coords[offset:...) and delimited by ends (first ring is the outer
// boundary, subsequent rings are holes). It intersects horizontal
// scan-lines anchored at the seed center's y with every ring edge and
// returns the midpoint of the widest x-interval whose center ray-casts
// inside the polygon. If no scan-line near the center yields a usable
// interval, or the polygon has zero area, the seed center itself is
// returned. The result is deterministic for a given input.
func InteriorPoint(coords []float64, offset int, ends []int, centerX, centerY float64) (float64, float64) {
	if len(ends) == 0 {
		return centerX, centerY
	}
	height := ExtentOf(coords[offset:ends[len(ends)-1]]).Height()
	for _, dy := range scanOffsets {
		y := centerY + dy*height
		if x, ok := widestInsideX(coords, offset, ends, y); ok {
			return x, y
		}
	}
	return centerX, centerY
}

// InteriorPoints computes one interior point per polygon of a
// multi-polygon, seeding each with the matching pair from centers, and
// returns the results as flat coordinate pairs in polygon order.
func InteriorPoints(coords []float64, endss [][]int, centers []float64) []float64 {
	points := make([]float64, 0, len(endss)*Stride)
	offset := 0
	for i, ends := range endss {
		x, y := InteriorPoint(coords, offset, ends, centers[i*Stride], centers[i*Stride+1])
		points = append(points, x, y)
		if len(ends) > 0 {
			offset = ends[len(ends)-1]
		}
	}
	return points
}

// PolygonCenters returns the extent center of each polygon span of a
// multi-polygon as flat coordinate pairs, for use as interior point seeds.
func PolygonCenters(coords []float64, endss [][]int) []float64 {
	centers := make([]float64, 0, len(endss)*Stride)
	offset := 0
	for _, ends := range endss {
		end := offset
		if len(ends) > 0 {
			end = ends[len(ends)-1]
		}
		x, y := ExtentOf(coords[offset:end]).Center()
		centers = append(centers, x, y)
		offset = end
	}
	return centers
}

// widestInsideX intersects the horizontal line at y with every ring edge,
// sorts the intersection abscissae and returns the midpoint of the widest
// interval that ray-casts inside the polygon. ok is false when no interval
// of positive width is inside.
func widestInsideX(coords []float64, offset int, ends []int, y float64) (float64, bool) {
	var xs []float64
	ringOffset := offset
	for _, end := range ends {
		x1, y1 := coords[end-Stride], coords[end-Stride+1]
		for i := ringOffset; i < end; i += Stride {
			x2, y2 := coords[i], coords[i+1]
			if (y <= y1 && y2 <= y) || (y1 <= y && y <= y2) {
				if y1 != y2 {
					xs = append(xs, (y-y1)/(y2-y1)*(x2-x1)+x1)
				} else if y == y1 {
					// Horizontal edge on the scan-line contributes both
					// endpoints instead of a single crossing.
					xs = append(xs, x1, x2)
				}
			}
			x1, y1 = x2, y2
		}
		ringOffset = end
	}

	sort.Float64s(xs)
	best := math.NaN()
	maxWidth := 0.0
	for i := 1; i < len(xs); i++ {
		width := xs[i] - xs[i-1]
		if width > maxWidth {
			mid := (xs[i-1] + xs[i]) / 2
			if RingsContainXY(coords, offset, ends, mid, y) {
				best = mid
				maxWidth = width
			}
		}
	}
	if math.IsNaN(best) {
		return 0, false
	}
	return best, true
}

// RingsContainXY reports whether (x, y) lies within the filled area of the
// polygon whose rings are delimited by ends: inside the outer ring and
// outside every hole ring.
func RingsContainXY(coords []float64, offset int, ends []int, x, y float64) bool {
	if len(ends) == 0 {
		return false
	}
	if !ringContainsXY(coords, offset, ends[0], x, y) {
		return false
	}
	for i := 1; i < len(ends); i++ {
		if ringContainsXY(coords, ends[i-1], ends[i], x, y) {
			return false
		}
	}
	return true
}

// ringContainsXY ray-casts (x, y) against the closed ring stored in
// coords[offset:end) using the even-odd rule.
func ringContainsXY(coords []float64, offset, end int, x, y float64) bool {
	contains := false
	x1, y1 := coords[end-Stride], coords[end-Stride+1]
	for i := offset; i < end; i += Stride {
		x2, y2 := coords[i], coords[i+1]
		if (y1 > y) != (y2 > y) && x < (x2-x1)*(y-y1)/(y2-y1)+x1 {
			contains = !contains
		}
		x1, y1 = x2, y2
	}
	return contains
}
