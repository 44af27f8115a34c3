// pkg/geom/transform.go - 2D affine transforms over flat coordinates
package geom

import "math"

// Transform is a 2D affine transform stored as the six parameters
// [a, b, c, d, e, f] of the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Transform [6]float64

// Compose builds a transform equivalent to translating by (dx1, dy1),
// scaling by (sx, sy), rotating by angle radians and finally translating
// by (dx2, dy2), applied in that order to incoming coordinates.
func Compose(dx1, dy1, sx, sy, angle, dx2, dy2 float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{
		sx * cos,
		sy * sin,
		-sx * sin,
		sy * cos,
		dx2*sx*cos - dy2*sx*sin + dx1,
		dx2*sy*sin + dy2*sy*cos + dy1,
	}
}

// PixelToWorld builds the transform mapping a top-down pixel extent onto a
// bottom-up world extent. A single uniform scale factor derived from the
// extent heights preserves aspect, and the negative y scale converts pixel
// rows (increasing downwards) to world rows (increasing upwards), anchored
// at the world extent's top-left corner.
func PixelToWorld(pixelExtent, worldExtent Extent) Transform {
	scale := worldExtent.Height() / pixelExtent.Height()
	return Compose(worldExtent.MinX(), worldExtent.MaxY(), scale, -scale, 0, 0, 0)
}

// Apply transforms every coordinate pair of a flat buffer in place.
func (t Transform) Apply(coords []float64) {
	for i := 0; i+1 < len(coords); i += Stride {
		x, y := coords[i], coords[i+1]
		coords[i] = t[0]*x + t[2]*y + t[4]
		coords[i+1] = t[1]*x + t[3]*y + t[5]
	}
}

// ApplyXY transforms a single coordinate pair.
func (t Transform) ApplyXY(x, y float64) (float64, float64) {
	return t[0]*x + t[2]*y + t[4], t[1]*x + t[3]*y + t[5]
}
