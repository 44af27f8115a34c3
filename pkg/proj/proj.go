// pkg/proj/proj.go - Projection registry
package proj

import (
	"errors"
	"fmt"
	"sync"

	"mvt-render-feature/pkg/geom"
)

// ErrProjectionNotFound is returned by Get when no projection is registered
// under the requested code.
var ErrProjectionNotFound = errors.New("projection not found")

// Units describes the measurement units of a projection's coordinates.
type Units string

const (
	UnitsMeters     Units = "m"
	UnitsDegrees    Units = "degrees"
	UnitsTilePixels Units = "tile-pixels"
)

// Projection describes a coordinate reference system by its validity extent
// in its own units and, optionally, the world extent its coordinates map
// onto. Tile-pixel projections carry the pixel square as their extent and
// the covered projected area as their world extent.
type Projection struct {
	code        string
	units       Units
	extent      geom.Extent
	worldExtent geom.Extent
	hasWorld    bool
}

// New creates a projection with the given code, units and extent.
func New(code string, units Units, extent geom.Extent) *Projection {
	return &Projection{
		code:   code,
		units:  units,
		extent: extent,
	}
}

// Code returns the projection identifier, e.g. "EPSG:3857".
func (p *Projection) Code() string {
	return p.code
}

// Units returns the projection's coordinate units.
func (p *Projection) Units() Units {
	return p.units
}

// Extent returns the projection's validity extent in its own units.
func (p *Projection) Extent() geom.Extent {
	return p.extent
}

// SetWorldExtent sets the extent the projection's coordinates map onto,
// expressed in the units of the destination reference system.
func (p *Projection) SetWorldExtent(extent geom.Extent) {
	p.worldExtent = extent
	p.hasWorld = true
}

// WorldExtent returns the projection's world extent. ok is false when none
// has been set.
func (p *Projection) WorldExtent() (geom.Extent, bool) {
	return p.worldExtent, p.hasWorld
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Projection)
)

// Register adds a projection to the registry, replacing any projection
// previously registered under the same code.
func Register(p *Projection) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[p.code] = p
}

// Get resolves a projection code. An unknown code yields an error wrapping
// ErrProjectionNotFound.
func Get(code string) (*Projection, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectionNotFound, code)
	}
	return p, nil
}

// WebMercatorMax is the half-width of the EPSG:3857 world square in meters.
const WebMercatorMax = 20037508.342789244

// NewTilePixels creates an unregistered tile-pixel projection pairing a
// local pixel extent with the projected world extent it covers.
func NewTilePixels(code string, pixelExtent, worldExtent geom.Extent) *Projection {
	p := New(code, UnitsTilePixels, pixelExtent)
	p.SetWorldExtent(worldExtent)
	return p
}

func init() {
	mercator := New("EPSG:3857", UnitsMeters,
		geom.NewExtent(-WebMercatorMax, -WebMercatorMax, WebMercatorMax, WebMercatorMax))
	mercator.SetWorldExtent(mercator.Extent())
	Register(mercator)

	geographic := New("EPSG:4326", UnitsDegrees, geom.NewExtent(-180, -90, 180, 90))
	geographic.SetWorldExtent(geographic.Extent())
	Register(geographic)
}
