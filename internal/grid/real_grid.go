package grid

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
)

// RealGrid is a dense scalar field over a BaseGrid lattice. It backs the
// docking-site cavity mask and the cavity-restraint scoring term, both of
// which need smooth (trilinearly interpolated) values rather than the
// nearest-lattice-point value a raw index lookup would give.
type RealGrid struct {
	BaseGrid
	values []float32
	tol    float32
}

// NewRealGrid allocates a RealGrid of zero values.
func NewRealGrid(base BaseGrid) *RealGrid {
	return &RealGrid{BaseGrid: base, values: make([]float32, base.NumPoints()), tol: 1e-6}
}

// GetValue returns 0 for an out-of-range index rather than panicking, since
// the common caller pattern is "look up near this atom" where edge atoms
// legitimately fall just outside the grid.
func (g *RealGrid) GetValue(ix, iy, iz int) float64 {
	if !g.IsValid(ix, iy, iz) {
		return 0
	}
	return float64(g.values[g.Flatten(ix, iy, iz)])
}

func (g *RealGrid) GetValueAt(c geom.Coord) float64 {
	if !g.IsValidCoord(c) {
		return 0
	}
	ix, iy, iz := g.Indices(c)
	return g.GetValue(ix, iy, iz)
}

func (g *RealGrid) SetValue(ix, iy, iz int, v float64) {
	if g.IsValid(ix, iy, iz) {
		g.values[g.Flatten(ix, iy, iz)] = float32(v)
	}
}

func (g *RealGrid) SetAllValues(v float64) {
	for i := range g.values {
		g.values[i] = float32(v)
	}
}

// GetSmoothedValue trilinearly interpolates the field at an arbitrary
// coordinate, the standard remedy for the discontinuities a raw
// nearest-point lookup would introduce into the scoring landscape (D.
// Oberlin & H.A. Scheraga, J. Comput. Chem. 1998).
func (g *RealGrid) GetSmoothedValue(c geom.Coord) float64 {
	origin := g.Origin()
	step := g.Step()
	fx := (c.X - origin.X) / step.X
	fy := (c.Y - origin.Y) / step.Y
	fz := (c.Z - origin.Z) / step.Z

	ix0, iy0, iz0 := int(math.Floor(fx)), int(math.Floor(fy)), int(math.Floor(fz))
	tx, ty, tz := fx-float64(ix0), fy-float64(iy0), fz-float64(iz0)

	v := 0.0
	for dz := 0; dz <= 1; dz++ {
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				wx := tx
				if dx == 0 {
					wx = 1 - tx
				}
				wy := ty
				if dy == 0 {
					wy = 1 - ty
				}
				wz := tz
				if dz == 0 {
					wz = 1 - tz
				}
				v += wx * wy * wz * g.GetValue(ix0+dx, iy0+dy, iz0+dz)
			}
		}
	}
	return v
}

// SetSphere sets every point within radius of center to val. If
// overwrite is false, points already at a non-zero value are left alone —
// used when stamping multiple non-overlapping accessible regions.
func (g *RealGrid) SetSphere(center geom.Coord, radius, val float64, overwrite bool) {
	for _, idx := range g.SphereIndices(center, radius) {
		if overwrite || g.values[idx] == 0 {
			g.values[idx] = float32(val)
		}
	}
}

// CountRange returns the number of grid points whose value lies in
// [minVal, maxVal], used to report docking-site cavity volume.
func (g *RealGrid) CountRange(minVal, maxVal float64) int {
	n := 0
	for _, v := range g.values {
		fv := float64(v)
		if fv >= minVal && fv <= maxVal {
			n++
		}
	}
	return n
}

// MinValue and MaxValue scan the whole field.
func (g *RealGrid) MinValue() float64 { return g.extreme(true) }
func (g *RealGrid) MaxValue() float64 { return g.extreme(false) }

func (g *RealGrid) extreme(min bool) float64 {
	if len(g.values) == 0 {
		return 0
	}
	best := float64(g.values[0])
	for _, v := range g.values[1:] {
		fv := float64(v)
		if (min && fv < best) || (!min && fv > best) {
			best = fv
		}
	}
	return best
}
