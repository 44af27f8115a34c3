// pkg/proj/proj_test.go - Unit tests for the projection registry
package proj

import (
	"errors"
	"testing"

	"mvt-render-feature/pkg/geom"
)

func TestGetDefaults(t *testing.T) {
	for _, code := range []string{"EPSG:3857", "EPSG:4326"} {
		p, err := Get(code)
		if err != nil {
			t.Fatalf("Get(%s) unexpected error: %v", code, err)
		}
		if p.Code() != code {
			t.Errorf("Get(%s).Code() = %s", code, p.Code())
		}
		if _, ok := p.WorldExtent(); !ok {
			t.Errorf("default projection %s has no world extent", code)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("EPSG:99999")
	if err == nil {
		t.Fatal("expected error for unknown projection code")
	}
	if !errors.Is(err, ErrProjectionNotFound) {
		t.Errorf("error %v does not wrap ErrProjectionNotFound", err)
	}
}

func TestRegister(t *testing.T) {
	p := New("TEST:1", UnitsMeters, geom.NewExtent(0, 0, 100, 100))
	Register(p)

	got, err := Get("TEST:1")
	if err != nil {
		t.Fatalf("Get after Register failed: %v", err)
	}
	if got != p {
		t.Error("Get returned a different projection instance")
	}
	if _, ok := got.WorldExtent(); ok {
		t.Error("world extent reported as set before SetWorldExtent")
	}
}

func TestNewTilePixels(t *testing.T) {
	pixel := geom.NewExtent(0, 0, 4096, 4096)
	world := geom.NewExtent(-100, -100, 100, 100)
	p := NewTilePixels("TILE_PIXELS/0/0/0", pixel, world)

	if p.Units() != UnitsTilePixels {
		t.Errorf("Units() = %s, want %s", p.Units(), UnitsTilePixels)
	}
	if p.Extent() != pixel {
		t.Errorf("Extent() = %v, want %v", p.Extent(), pixel)
	}
	got, ok := p.WorldExtent()
	if !ok || got != world {
		t.Errorf("WorldExtent() = %v, %v, want %v, true", got, ok, world)
	}
}

func TestMercatorWorldSquare(t *testing.T) {
	p, err := Get("EPSG:3857")
	if err != nil {
		t.Fatal(err)
	}
	ext := p.Extent()
	if ext.Width() != ext.Height() {
		t.Errorf("web mercator extent is not square: %v", ext)
	}
}
