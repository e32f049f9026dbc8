package scoring

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/grid"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const (
	ParamGridStep = "GRIDSTEP"
	ParamBorder   = "BORDER"
)

// BaseIdxSF is the mixin for every term that scores against a fixed grid
// indexing the receptor's interaction centers (VdwIdxSF, PolarIdxSF): it
// owns the GRIDSTEP/BORDER parameters and the lazy grid-construction logic
// every indexed term shares, rebuilding its grids whenever the workspace
// model list changes (a new receptor conformer, a partitioning update).
type BaseIdxSF struct {
	*BaseInterSF
	nonBonded *grid.NonBondedGrid
	partDist  float64
	built     bool
}

// NewBaseIdxSF builds a BaseIdxSF with default 0.5A grid step and 1.0A
// border, the values the indexed terms were tuned against.
func NewBaseIdxSF(class, name string, rng float64) *BaseIdxSF {
	b := &BaseIdxSF{BaseInterSF: NewBaseInterSF(class, name, rng)}
	b.AddParameter(ParamGridStep, variant.Double(0.5))
	b.AddParameter(ParamBorder, variant.Double(1.0))
	return b
}

func (b *BaseIdxSF) GridStep() float64 { return b.GetParameter(ParamGridStep).AsDouble() }
func (b *BaseIdxSF) Border() float64   { return b.GetParameter(ParamBorder).AsDouble() }

// GetMaxError bounds the distance error a point can accumulate by being
// snapped to the nearest grid cell rather than scored at its true
// coordinate: half the diagonal of one cubic cell.
func (b *BaseIdxSF) GetMaxError() float64 {
	return 0.5 * math.Sqrt(3) * b.GridStep()
}

// EffectiveRange returns the term's nominal Range, narrowed to the current
// SF_PARTITION distance when one has been set and is smaller than Range.
// A partition distance of 0 (the default) or one at or beyond Range has no
// effect. This is what lets a GA population's trial evaluations score only
// a cheap, nearby subset of contacts during a partitioned stage, then
// widen back out to the full Range once SF_PARTITION is cleared.
func (b *BaseIdxSF) EffectiveRange() float64 {
	if b.partDist > 0 && b.partDist < b.Range() {
		return b.partDist
	}
	return b.Range()
}

// GetCorrectedRange extends the term's effective interaction range by the
// grid quantisation error and the border margin, the radius actually used
// when stamping interaction centers onto the grid so that a ligand atom
// sitting right at the effective range boundary still finds every
// receptor center that could legitimately contribute.
func (b *BaseIdxSF) GetCorrectedRange() float64 {
	return b.EffectiveRange() + b.GetMaxError() + b.Border()
}

// EnsureGrid builds the non-bonded interaction grid over the receptor's
// centers if it has not been built yet (or Invalidate was called since).
func (b *BaseIdxSF) EnsureGrid(centers []*model.InteractionCenter) {
	if b.built {
		return
	}
	b.rebuild(centers)
}

// Invalidate forces the next EnsureGrid call to rebuild the grid, used
// after a receptor conformer change.
func (b *BaseIdxSF) Invalidate() { b.built = false }

func (b *BaseIdxSF) rebuild(centers []*model.InteractionCenter) {
	step := b.GridStep()
	bounds := boundingBox(centers, b.GetCorrectedRange(), step)
	base := grid.NewBaseGrid(bounds.origin, geom.Vector{X: step, Y: step, Z: step}, bounds.nx, bounds.ny, bounds.nz)
	ng := grid.NewNonBondedGrid(base)
	for _, c := range centers {
		ng.SetInteractionLists(c, b.GetCorrectedRange())
	}
	ng.UniqueInteractionLists()
	b.nonBonded = ng
	b.built = true
}

// NearbyCenters returns every receptor interaction center stamped within
// range of c.
func (b *BaseIdxSF) NearbyCenters(c geom.Coord) []*model.InteractionCenter {
	if b.nonBonded == nil {
		return nil
	}
	idx := b.nonBonded.FlattenCoord(c)
	return b.nonBonded.GetInteractionListAt(idx)
}

type box struct {
	origin     geom.Coord
	nx, ny, nz int
}

// boundingBox computes a lattice covering every center with margin padding
// on each side, sized so the grid step from BaseIdxSF divides it evenly
// enough for SphereIndices to stay in range.
func boundingBox(centers []*model.InteractionCenter, margin, step float64) box {
	if len(centers) == 0 {
		return box{nx: 1, ny: 1, nz: 1}
	}
	min := centers[0].Coord()
	max := min
	for _, c := range centers[1:] {
		p := c.Coord()
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	nx := int((max.X-min.X)/step) + int(2*margin/step) + 2
	ny := int((max.Y-min.Y)/step) + int(2*margin/step) + 2
	nz := int((max.Z-min.Z)/step) + int(2*margin/step) + 2
	return box{
		origin: geom.Coord{X: min.X - margin, Y: min.Y - margin, Z: min.Z - margin},
		nx:     nx, ny: ny, nz: nz,
	}
}

// HandleRequest additionally honours Partition, which narrows
// EffectiveRange (and so the grid built from it) to the given distance;
// any change forces a rebuild on the next EnsureGrid call. A broadcast
// Partition request (built by NewPartition) carries one param, the
// distance, and applies to every term; an addressed one (NewPartitionFor)
// carries two, the target full name and the distance, and is ignored by
// every term whose GetFullName doesn't match the first.
func (b *BaseIdxSF) HandleRequest(r request.Request) {
	if r.ID() == request.Partition {
		params := r.Params()
		var dist float64
		switch len(params) {
		case 1:
			dist = params[0].AsDouble()
		case 2:
			if params[0].AsString() != b.GetFullName() {
				return
			}
			dist = params[1].AsDouble()
		default:
			return
		}
		if dist != b.partDist {
			b.partDist = dist
			b.Invalidate()
		}
		return
	}
	b.BaseSF.HandleRequest(r)
}
