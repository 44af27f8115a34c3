// pkg/mvt/flatten.go - Flattening of orb geometries into coordinate buffers
package mvt

import (
	"fmt"

	"github.com/paulmach/orb"

	"mvt-render-feature/pkg/geom"
)

// Flatten converts an orb geometry into the flat coordinate buffer, ends
// descriptor and type tag of a render feature. Ends offsets are exclusive
// flat indices; the descriptor variant follows the geometry type (simple
// for lines and polygons with holes, nested for multi-polygons, none for
// points).
func Flatten(g orb.Geometry) (geom.Type, []float64, geom.Ends, error) {
	switch g := g.(type) {
	case orb.Point:
		return geom.TypePoint, []float64{g[0], g[1]}, geom.Ends{}, nil

	case orb.MultiPoint:
		coords := make([]float64, 0, len(g)*geom.Stride)
		for _, point := range g {
			coords = append(coords, point[0], point[1])
		}
		return geom.TypeMultiPoint, coords, geom.Ends{}, nil

	case orb.LineString:
		coords := appendPoints(nil, g)
		return geom.TypeLineString, coords, geom.NewSimpleEnds([]int{len(coords)}), nil

	case orb.MultiLineString:
		var coords []float64
		ends := make([]int, 0, len(g))
		for _, lineString := range g {
			coords = appendPoints(coords, lineString)
			ends = append(ends, len(coords))
		}
		return geom.TypeMultiLineString, coords, geom.NewSimpleEnds(ends), nil

	case orb.Polygon:
		var coords []float64
		ends := make([]int, 0, len(g))
		for _, ring := range g {
			coords = appendPoints(coords, orb.LineString(ring))
			ends = append(ends, len(coords))
		}
		return geom.TypePolygon, coords, geom.NewSimpleEnds(ends), nil

	case orb.MultiPolygon:
		var coords []float64
		endss := make([][]int, 0, len(g))
		for _, polygon := range g {
			ends := make([]int, 0, len(polygon))
			for _, ring := range polygon {
				coords = appendPoints(coords, orb.LineString(ring))
				ends = append(ends, len(coords))
			}
			endss = append(endss, ends)
		}
		return geom.TypeMultiPolygon, coords, geom.NewNestedEnds(endss), nil

	default:
		return "", nil, geom.Ends{}, fmt.Errorf("unsupported geometry type: %T", g)
	}
}

func appendPoints(coords []float64, points orb.LineString) []float64 {
	for _, point := range points {
		coords = append(coords, point[0], point[1])
	}
	return coords
}
