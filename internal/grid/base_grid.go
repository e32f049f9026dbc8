// Package grid implements the regular 3D lattice family every indexed
// scoring term builds on: BaseGrid (coordinate <-> index conversion),
// RealGrid (a dense scalar field with trilinear sampling, used by the
// cavity-restraint term and docking-site masks), and InteractionGrid /
// NonBondedGrid (per-cell candidate lists, used by the VdW and polar
// indexed terms to avoid O(n^2) distance scans).
package grid

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
)

// BaseGrid describes the lattice geometry shared by every grid type: an
// origin, a per-axis step, and a cell count per axis.
type BaseGrid struct {
	origin   geom.Coord
	step     geom.Vector
	nX, nY, nZ int
	// sG1, sG2 are the strides used to flatten a 3D index into a 1D slice
	// index, computed once so every lookup is a handful of integer ops.
	sG1, sG2 int
}

// NewBaseGrid constructs a lattice covering [origin, origin + step*(n-1)]
// along each axis.
func NewBaseGrid(origin geom.Coord, step geom.Vector, nX, nY, nZ int) BaseGrid {
	if nX < 1 {
		nX = 1
	}
	if nY < 1 {
		nY = 1
	}
	if nZ < 1 {
		nZ = 1
	}
	return BaseGrid{
		origin: origin, step: step,
		nX: nX, nY: nY, nZ: nZ,
		sG1: nX, sG2: nX * nY,
	}
}

func (g BaseGrid) Origin() geom.Coord { return g.origin }
func (g BaseGrid) Step() geom.Vector  { return g.step }
func (g BaseGrid) NX() int            { return g.nX }
func (g BaseGrid) NY() int            { return g.nY }
func (g BaseGrid) NZ() int            { return g.nZ }
func (g BaseGrid) NumPoints() int     { return g.nX * g.nY * g.nZ }

// MaxCoord returns the far corner of the lattice's bounding box.
func (g BaseGrid) MaxCoord() geom.Coord {
	return geom.Coord{
		X: g.origin.X + g.step.X*float64(g.nX-1),
		Y: g.origin.Y + g.step.Y*float64(g.nY-1),
		Z: g.origin.Z + g.step.Z*float64(g.nZ-1),
	}
}

// IsValid reports whether the integer index triple lies within the lattice.
func (g BaseGrid) IsValid(ix, iy, iz int) bool {
	return ix >= 0 && ix < g.nX && iy >= 0 && iy < g.nY && iz >= 0 && iz < g.nZ
}

// IsValidCoord reports whether c lies within the lattice bounding box.
func (g BaseGrid) IsValidCoord(c geom.Coord) bool {
	ix, iy, iz := g.Indices(c)
	return g.IsValid(ix, iy, iz)
}

// Indices returns the nearest integer lattice index for c. The caller must
// check IsValid before using the result to index storage.
func (g BaseGrid) Indices(c geom.Coord) (ix, iy, iz int) {
	ix = int(math.Floor((c.X-g.origin.X)/g.step.X + 0.5))
	iy = int(math.Floor((c.Y-g.origin.Y)/g.step.Y + 0.5))
	iz = int(math.Floor((c.Z-g.origin.Z)/g.step.Z + 0.5))
	return
}

// Flatten converts a valid 3D index triple into a 1D slice index.
func (g BaseGrid) Flatten(ix, iy, iz int) int {
	return ix + iy*g.sG1 + iz*g.sG2
}

// FlattenCoord is Flatten(Indices(c)).
func (g BaseGrid) FlattenCoord(c geom.Coord) int {
	ix, iy, iz := g.Indices(c)
	return g.Flatten(ix, iy, iz)
}

// CoordOf returns the lattice point coordinate at the given index triple.
func (g BaseGrid) CoordOf(ix, iy, iz int) geom.Coord {
	return geom.Coord{
		X: g.origin.X + float64(ix)*g.step.X,
		Y: g.origin.Y + float64(iy)*g.step.Y,
		Z: g.origin.Z + float64(iz)*g.step.Z,
	}
}

// SphereIndices returns the flat indices of every valid lattice point
// within radius of center, used to stamp interaction centers onto the grid
// and to mask accessible/inaccessible docking-site regions.
func (g BaseGrid) SphereIndices(center geom.Coord, radius float64) []int {
	if radius <= 0 {
		if g.IsValidCoord(center) {
			return []int{g.FlattenCoord(center)}
		}
		return nil
	}
	cix, ciy, ciz := g.Indices(center)
	rx := int(math.Ceil(radius/g.step.X)) + 1
	ry := int(math.Ceil(radius/g.step.Y)) + 1
	rz := int(math.Ceil(radius/g.step.Z)) + 1
	r2 := radius * radius
	var out []int
	for iz := ciz - rz; iz <= ciz+rz; iz++ {
		for iy := ciy - ry; iy <= ciy+ry; iy++ {
			for ix := cix - rx; ix <= cix+rx; ix++ {
				if !g.IsValid(ix, iy, iz) {
					continue
				}
				p := g.CoordOf(ix, iy, iz)
				if p.Dist2(center) <= r2 {
					out = append(out, g.Flatten(ix, iy, iz))
				}
			}
		}
	}
	return out
}
