// pkg/geom/interpolate.go - Linear interpolation along flat coordinate runs
package geom

import "math"

// InterpolatePoint returns the point at the given fractional arc-length
// position along the polyline stored in coords[offset:end) at stride 2.
// The fraction is expected in [0, 1]. A zero-length run (a single point or
// all-coincident points) returns its first point.
func InterpolatePoint(coords []float64, offset, end int, fraction float64) (float64, float64) {
	total := 0.0
	x1, y1 := coords[offset], coords[offset+1]
	for i := offset + Stride; i < end; i += Stride {
		x2, y2 := coords[i], coords[i+1]
		total += math.Hypot(x2-x1, y2-y1)
		x1, y1 = x2, y2
	}
	if total == 0 {
		return coords[offset], coords[offset+1]
	}

	target := fraction * total
	walked := 0.0
	x1, y1 = coords[offset], coords[offset+1]
	for i := offset + Stride; i < end; i += Stride {
		x2, y2 := coords[i], coords[i+1]
		segment := math.Hypot(x2-x1, y2-y1)
		if walked+segment >= target {
			t := 0.0
			if segment > 0 {
				t = (target - walked) / segment
			}
			return x1 + t*(x2-x1), y1 + t*(y2-y1)
		}
		walked += segment
		x1, y1 = x2, y2
	}

	// Accumulated rounding can leave the target just past the last segment.
	return coords[end-Stride], coords[end-Stride+1]
}

// Midpoints computes the half-length point of each run delimited by ends
// and returns the results as flat coordinate pairs in run order.
func Midpoints(coords []float64, ends []int) []float64 {
	midpoints := make([]float64, 0, len(ends)*Stride)
	offset := 0
	for _, end := range ends {
		x, y := InterpolatePoint(coords, offset, end, 0.5)
		midpoints = append(midpoints, x, y)
		offset = end
	}
	return midpoints
}
