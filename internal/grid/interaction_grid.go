package grid

import "github.com/sarat-asymmetrica/dockvedic/internal/model"

// InteractionGrid indexes a set of InteractionCenters by lattice cell, so
// the VdW and polar indexed terms can retrieve "everything near this
// ligand atom" in O(1) instead of scanning every receptor atom. Storage is
// a slice of slices, not a map, matching the indexed-by-flat-index lookup
// pattern of the structure this is grounded on — a map would cost a hash
// per lookup on what is the single hottest path in the scorer.
type InteractionGrid struct {
	BaseGrid
	cells [][]*model.InteractionCenter
}

func NewInteractionGrid(base BaseGrid) *InteractionGrid {
	return &InteractionGrid{BaseGrid: base, cells: make([][]*model.InteractionCenter, base.NumPoints())}
}

// GetInteractionList returns the centers indexed at the given flat cell.
func (g *InteractionGrid) GetInteractionList(flatIdx int) []*model.InteractionCenter {
	if flatIdx < 0 || flatIdx >= len(g.cells) {
		return nil
	}
	return g.cells[flatIdx]
}

// GetInteractionListAt is GetInteractionList for a flat cell index, such
// as FlattenCoord returns for the cell nearest a coordinate.
func (g *InteractionGrid) GetInteractionListAt(cIdx int) []*model.InteractionCenter {
	return g.GetInteractionList(cIdx)
}

// SetInteractionLists stamps center onto every cell within radius of its
// coordinate, so a lookup from any nearby ligand atom will find it.
func (g *InteractionGrid) SetInteractionLists(center *model.InteractionCenter, radius float64) {
	for _, idx := range g.SphereIndices(center.Coord(), radius) {
		g.cells[idx] = append(g.cells[idx], center)
	}
}

// ClearInteractionLists empties every cell. The scoring terms do not call
// it: BaseIdxSF builds a fresh grid each time it rebuilds.
func (g *InteractionGrid) ClearInteractionLists() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// UniqueInteractionLists deduplicates every cell's center list in place,
// needed because SetInteractionLists is called once per flexible receptor
// conformer and the same center can be stamped from overlapping spheres.
func (g *InteractionGrid) UniqueInteractionLists() {
	for i, cell := range g.cells {
		if len(cell) < 2 {
			continue
		}
		seen := make(map[*model.InteractionCenter]struct{}, len(cell))
		out := cell[:0]
		for _, c := range cell {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				out = append(out, c)
			}
		}
		g.cells[i] = out
	}
}

// NonBondedGrid is a thin specialisation of InteractionGrid for the
// non-directional (VdW) term, kept as a distinct type so the VdW and polar
// terms cannot accidentally cross-wire their indexed data.
type NonBondedGrid struct {
	InteractionGrid
}

func NewNonBondedGrid(base BaseGrid) *NonBondedGrid {
	return &NonBondedGrid{InteractionGrid: *NewInteractionGrid(base)}
}

// NonBondedHHSGrid additionally partitions candidates by whether they
// belong to a "hot" or "cold" solvent history set (MarkHot/IsHot). No
// scoring term in this module constructs one; VdwIdxSF indexes its
// receptor through a plain NonBondedGrid.
type NonBondedHHSGrid struct {
	InteractionGrid
	hot map[int]bool
}

func NewNonBondedHHSGrid(base BaseGrid) *NonBondedHHSGrid {
	return &NonBondedHHSGrid{InteractionGrid: *NewInteractionGrid(base), hot: make(map[int]bool)}
}

func (g *NonBondedHHSGrid) MarkHot(flatIdx int)  { g.hot[flatIdx] = true }
func (g *NonBondedHHSGrid) IsHot(flatIdx int) bool { return g.hot[flatIdx] }
