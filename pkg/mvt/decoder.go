// pkg/mvt/decoder.go - Mapbox Vector Tile decoding into render features
package mvt

import (
	"fmt"

	"github.com/paulmach/orb/encoding/mvt"

	"mvt-render-feature/pkg/feature"
	"mvt-render-feature/pkg/geom"
	"mvt-render-feature/pkg/proj"
)

// Decoder decodes Mapbox Vector Tiles from Protocol Buffer format into
// flat-coordinate render features.
type Decoder struct {
	extent int
}

// NewDecoder creates a new MVT decoder with the default 4096 tile extent.
func NewDecoder() *Decoder {
	return &Decoder{
		extent: 4096,
	}
}

// NewDecoderWithExtent creates a new MVT decoder with a custom tile extent.
func NewDecoderWithExtent(extent int) *Decoder {
	return &Decoder{
		extent: extent,
	}
}

// DecodedTile represents a decoded MVT tile with its layers and metadata.
type DecodedTile struct {
	Layers map[string]*DecodedLayer
	Extent int
	TileID TileID
}

// DecodedLayer represents a single layer within an MVT tile. Feature
// coordinates are in tile-pixel space until transformed.
type DecodedLayer struct {
	Name     string
	Features []*feature.RenderFeature
	Extent   int
	Version  int
}

// Decode decodes a Mapbox Vector Tile from binary Protocol Buffer data
// into render features grouped per layer. Coordinates stay in tile-pixel
// space; use TilePixelProjection and RenderFeature.Transform to project
// them.
func (d *Decoder) Decode(data []byte, z, x, y int) (*DecodedTile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty tile data")
	}

	layers, err := mvt.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal MVT data: %w", err)
	}

	decodedTile := &DecodedTile{
		Layers: make(map[string]*DecodedLayer),
		Extent: d.extent,
		TileID: TileID{Z: z, X: x, Y: y},
	}

	for _, layer := range layers {
		decodedLayer, err := d.decodeLayer(layer)
		if err != nil {
			return nil, fmt.Errorf("failed to decode layer %s: %w", layer.Name, err)
		}
		decodedTile.Layers[layer.Name] = decodedLayer
	}

	return decodedTile, nil
}

// decodeLayer flattens every feature of a single MVT layer. Features whose
// geometry cannot be flattened are skipped rather than failing the layer.
func (d *Decoder) decodeLayer(layer *mvt.Layer) (*DecodedLayer, error) {
	decodedLayer := &DecodedLayer{
		Name:     layer.Name,
		Features: make([]*feature.RenderFeature, 0, len(layer.Features)),
		Extent:   int(layer.Extent),
		Version:  int(layer.Version),
	}

	for _, layerFeature := range layer.Features {
		if layerFeature.Geometry == nil {
			continue
		}
		typ, coords, ends, err := Flatten(layerFeature.Geometry)
		if err != nil {
			continue
		}
		decodedLayer.Features = append(decodedLayer.Features, feature.New(
			typ,
			coords,
			ends,
			map[string]interface{}(layerFeature.Properties),
			layerFeature.ID,
		))
	}

	return decodedLayer, nil
}

// TilePixelProjection builds and registers the tile-pixel projection of a
// tile: the decoder extent as pixel extent, the tile's web-mercator bounds
// as world extent. The returned projection's code can be passed to
// RenderFeature.Transform as the source.
func (d *Decoder) TilePixelProjection(tid TileID) *proj.Projection {
	n := float64(uint64(1) << uint(tid.Z))
	size := 2 * proj.WebMercatorMax / n
	minX := -proj.WebMercatorMax + float64(tid.X)*size
	maxY := proj.WebMercatorMax - float64(tid.Y)*size

	p := proj.NewTilePixels(
		fmt.Sprintf("TILE_PIXELS/%s", tid),
		geom.NewExtent(0, 0, float64(d.extent), float64(d.extent)),
		geom.NewExtent(minX, maxY-size, minX+size, maxY),
	)
	proj.Register(p)
	return p
}

// LayerNames returns the names of all layers in the decoded tile.
func (dt *DecodedTile) LayerNames() []string {
	names := make([]string, 0, len(dt.Layers))
	for name := range dt.Layers {
		names = append(names, name)
	}
	return names
}

// FeatureCount returns the total number of features across all layers.
func (dt *DecodedTile) FeatureCount() int {
	count := 0
	for _, layer := range dt.Layers {
		count += len(layer.Features)
	}
	return count
}

// HasLayer checks if the tile contains a specific layer.
func (dt *DecodedTile) HasLayer(layerName string) bool {
	_, exists := dt.Layers[layerName]
	return exists
}

// IsEmpty returns true if the tile contains no features.
func (dt *DecodedTile) IsEmpty() bool {
	return dt.FeatureCount() == 0
}

// TileID represents the tile coordinates and zoom level.
type TileID struct {
	Z int
	X int
	Y int
}

// String returns the z/x/y representation of the tile ID.
func (tid TileID) String() string {
	return fmt.Sprintf("%d/%d/%d", tid.Z, tid.X, tid.Y)
}

// Validate checks if the tile coordinates are valid.
func (tid TileID) Validate() error {
	if tid.Z < 0 || tid.Z > 22 {
		return fmt.Errorf("invalid zoom level %d: must be between 0 and 22", tid.Z)
	}

	maxTile := 1 << uint(tid.Z)
	if tid.X < 0 || tid.X >= maxTile {
		return fmt.Errorf("invalid X coordinate %d for zoom %d: must be between 0 and %d", tid.X, tid.Z, maxTile-1)
	}

	if tid.Y < 0 || tid.Y >= maxTile {
		return fmt.Errorf("invalid Y coordinate %d for zoom %d: must be between 0 and %d", tid.Y, tid.Z, maxTile-1)
	}

	return nil
}
