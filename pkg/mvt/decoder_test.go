// pkg/mvt/decoder_test.go - Unit tests for MVT decoder
package mvt

import (
	"testing"

	"github.com/paulmach/orb"
	orbmvt "github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"

	"mvt-render-feature/pkg/geom"
)

func TestNewDecoder(t *testing.T) {
	decoder := NewDecoder()
	if decoder.extent != 4096 {
		t.Errorf("Expected default extent 4096, got %d", decoder.extent)
	}
}

func TestNewDecoderWithExtent(t *testing.T) {
	decoder := NewDecoderWithExtent(512)
	if decoder.extent != 512 {
		t.Errorf("Expected custom extent 512, got %d", decoder.extent)
	}
}

func TestDecode_EmptyData(t *testing.T) {
	decoder := NewDecoder()
	_, err := decoder.Decode([]byte{}, 1, 1, 1)
	if err == nil {
		t.Error("Expected error for empty data")
	}
	if err.Error() != "empty tile data" {
		t.Errorf("Expected 'empty tile data' error, got %s", err.Error())
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {64, 0}, {64, 64}, {0, 64}, {0, 0}}})
	f.Properties["name"] = "park"
	fc.Append(f)

	data, err := orbmvt.Marshal(orbmvt.NewLayers(map[string]*geojson.FeatureCollection{"landuse": fc}))
	if err != nil {
		t.Fatalf("failed to marshal test tile: %v", err)
	}

	decoder := NewDecoder()
	tile, err := decoder.Decode(data, 1, 0, 0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !tile.HasLayer("landuse") {
		t.Fatalf("decoded tile is missing the landuse layer, has %v", tile.LayerNames())
	}
	if tile.FeatureCount() != 1 {
		t.Fatalf("FeatureCount() = %d, want 1", tile.FeatureCount())
	}
	if tile.IsEmpty() {
		t.Error("IsEmpty() = true for a tile with one feature")
	}

	decoded := tile.Layers["landuse"].Features[0]
	if decoded.Type() != geom.TypePolygon {
		t.Errorf("decoded feature type = %s, want Polygon", decoded.Type())
	}
	if name, ok := decoded.Get("name"); !ok || name != "park" {
		t.Errorf("Get(name) = %v, %v, want park, true", name, ok)
	}
	if ext := decoded.Extent(); ext != geom.NewExtent(0, 0, 64, 64) {
		t.Errorf("decoded extent = %v, want [0 0 64 64]", ext)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name       string
		geometry   orb.Geometry
		wantType   geom.Type
		wantCoords []float64
		wantEnds   []int
		wantEndss  [][]int
	}{
		{
			name:       "point",
			geometry:   orb.Point{1, 2},
			wantType:   geom.TypePoint,
			wantCoords: []float64{1, 2},
		},
		{
			name:       "multipoint",
			geometry:   orb.MultiPoint{{1, 2}, {3, 4}},
			wantType:   geom.TypeMultiPoint,
			wantCoords: []float64{1, 2, 3, 4},
		},
		{
			name:       "linestring",
			geometry:   orb.LineString{{0, 0}, {10, 0}},
			wantType:   geom.TypeLineString,
			wantCoords: []float64{0, 0, 10, 0},
			wantEnds:   []int{4},
		},
		{
			name:       "multilinestring",
			geometry:   orb.MultiLineString{{{0, 0}, {10, 0}}, {{0, 10}, {0, 20}, {0, 30}}},
			wantType:   geom.TypeMultiLineString,
			wantCoords: []float64{0, 0, 10, 0, 0, 10, 0, 20, 0, 30},
			wantEnds:   []int{4, 10},
		},
		{
			name: "polygon with hole",
			geometry: orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
				{{2, 2}, {3, 2}, {3, 3}, {2, 2}},
			},
			wantType:   geom.TypePolygon,
			wantCoords: []float64{0, 0, 10, 0, 10, 10, 0, 0, 2, 2, 3, 2, 3, 3, 2, 2},
			wantEnds:   []int{8, 16},
		},
		{
			name: "multipolygon",
			geometry: orb.MultiPolygon{
				{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
				{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
			},
			wantType:   geom.TypeMultiPolygon,
			wantCoords: []float64{0, 0, 1, 0, 1, 1, 0, 0, 5, 5, 6, 5, 6, 6, 5, 5},
			wantEndss:  [][]int{{8}, {16}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, coords, ends, err := Flatten(tt.geometry)
			if err != nil {
				t.Fatalf("Flatten failed: %v", err)
			}
			if typ != tt.wantType {
				t.Errorf("type = %s, want %s", typ, tt.wantType)
			}
			if len(coords) != len(tt.wantCoords) {
				t.Fatalf("coords = %v, want %v", coords, tt.wantCoords)
			}
			for i := range tt.wantCoords {
				if coords[i] != tt.wantCoords[i] {
					t.Errorf("coords[%d] = %v, want %v", i, coords[i], tt.wantCoords[i])
				}
			}
			if tt.wantEnds != nil {
				got := ends.Simple()
				if len(got) != len(tt.wantEnds) {
					t.Fatalf("ends = %v, want %v", got, tt.wantEnds)
				}
				for i := range tt.wantEnds {
					if got[i] != tt.wantEnds[i] {
						t.Errorf("ends[%d] = %d, want %d", i, got[i], tt.wantEnds[i])
					}
				}
			}
			if tt.wantEndss != nil {
				got := ends.Nested()
				if !ends.IsNested() || len(got) != len(tt.wantEndss) {
					t.Fatalf("endss = %v, want %v", got, tt.wantEndss)
				}
				for i := range tt.wantEndss {
					for j := range tt.wantEndss[i] {
						if got[i][j] != tt.wantEndss[i][j] {
							t.Errorf("endss[%d][%d] = %d, want %d", i, j, got[i][j], tt.wantEndss[i][j])
						}
					}
				}
			}
		})
	}
}

func TestFlattenUnsupported(t *testing.T) {
	_, _, _, err := Flatten(orb.Collection{orb.Point{0, 0}})
	if err == nil {
		t.Error("Expected error for unsupported geometry type")
	}
}

func TestTilePixelProjection(t *testing.T) {
	decoder := NewDecoder()

	// The z0 tile covers the whole web-mercator square.
	p := decoder.TilePixelProjection(TileID{Z: 0, X: 0, Y: 0})
	if p.Extent() != geom.NewExtent(0, 0, 4096, 4096) {
		t.Errorf("pixel extent = %v, want [0 0 4096 4096]", p.Extent())
	}
	world, ok := p.WorldExtent()
	if !ok {
		t.Fatal("tile pixel projection has no world extent")
	}
	const max = 20037508.342789244
	if world != geom.NewExtent(-max, -max, max, max) {
		t.Errorf("z0 world extent = %v, want the full mercator square", world)
	}

	// At z1, tile (1, 0) is the top-right quarter.
	p = decoder.TilePixelProjection(TileID{Z: 1, X: 1, Y: 0})
	world, _ = p.WorldExtent()
	if world != geom.NewExtent(0, 0, max, max) {
		t.Errorf("z1 (1,0) world extent = %v, want [0 0 %v %v]", world, max, max)
	}
}

func TestTileIDString(t *testing.T) {
	tid := TileID{Z: 14, X: 8362, Y: 5956}
	expected := "14/8362/5956"
	if tid.String() != expected {
		t.Errorf("Expected %s, got %s", expected, tid.String())
	}
}

func TestTileIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		tid     TileID
		wantErr bool
	}{
		{"valid coordinates", TileID{14, 8362, 5956}, false},
		{"invalid zoom negative", TileID{-1, 0, 0}, true},
		{"invalid zoom too high", TileID{23, 0, 0}, true},
		{"invalid x negative", TileID{1, -1, 0}, true},
		{"invalid x too high", TileID{1, 2, 0}, true},
		{"invalid y negative", TileID{1, 0, -1}, true},
		{"invalid y too high", TileID{1, 0, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tid.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("TileID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
