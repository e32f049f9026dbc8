// Package site implements the docking site: the cavity region within which
// the ligand's rigid-body center of mass is constrained, backed by a
// RealGrid cavity mask so "is this point inside the site" is an O(1) grid
// lookup rather than a distance check against every cavity-defining atom.
package site

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/grid"
)

// DockingSite wraps a cavity RealGrid plus its bounding box, shared by
// BaseIdxSF-derived terms (to size their indexed grids) and by the
// cavity-restraint term (to penalise ligand atoms straying outside it).
type DockingSite struct {
	cavity            *grid.RealGrid
	minCoord, maxCoord geom.Coord
}

// NewDockingSite wraps a precomputed cavity mask grid. Constructing the
// mask itself (from a reference ligand, a cavity-search algorithm, or a
// user-supplied sphere/cuboid) is explicitly out of scope here.
func NewDockingSite(cavity *grid.RealGrid) *DockingSite {
	return &DockingSite{
		cavity:   cavity,
		minCoord: cavity.Origin(),
		maxCoord: cavity.MaxCoord(),
	}
}

func (s *DockingSite) MinCoord() geom.Coord { return s.minCoord }
func (s *DockingSite) MaxCoord() geom.Coord { return s.maxCoord }
func (s *DockingSite) Cavity() *grid.RealGrid { return s.cavity }

// Volume returns the cavity volume in cubic Angstroms, counting grid points
// whose cavity value is at least 0.5 and scaling by the cell volume.
func (s *DockingSite) Volume() float64 {
	step := s.cavity.Step()
	cellVol := step.X * step.Y * step.Z
	n := s.cavity.CountRange(0.5, 1e9)
	return float64(n) * cellVol
}

// Contains reports whether c lies inside the accessible cavity region,
// using the smoothed (trilinearly interpolated) mask value so the boundary
// is not staircase-shaped at the grid resolution.
func (s *DockingSite) Contains(c geom.Coord) bool {
	if !s.cavity.IsValidCoord(c) {
		return false
	}
	return s.cavity.GetSmoothedValue(c) >= 0.5
}

// DistanceOutside returns how far c lies outside the cavity mask's
// accessible region: 0 where the smoothed mask value is at least 0.5,
// otherwise an approximate distance of (0.5 - value) times the length of
// one cell's diagonal, used by the cavity-restraint term as a cheap
// penalty gradient proxy. A point off the grid gets its distance to the
// grid's minimum corner.
func (s *DockingSite) DistanceOutside(c geom.Coord) float64 {
	if !s.cavity.IsValidCoord(c) {
		return s.minCoord.Dist(c)
	}
	v := s.cavity.GetSmoothedValue(c)
	if v >= 0.5 {
		return 0
	}
	return (0.5 - v) * s.cavity.Step().Length()
}
