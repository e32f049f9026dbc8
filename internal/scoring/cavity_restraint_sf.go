package scoring

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

const ParamCavityLigandIdx = "LIGAND_IDX"

// CavityRestraintSF penalises a pose for pushing ligand atoms outside the
// docking site's precomputed cavity mask: each atom beyond the cavity
// boundary contributes a quadratic penalty proportional to its distance
// outside, pulling the search back toward the cavity during the early,
// coarse phase of a run.
type CavityRestraintSF struct {
	*BaseSF
}

func NewCavityRestraintSF(name string) *CavityRestraintSF {
	c := &CavityRestraintSF{BaseSF: NewBaseSF("CavityRestraintSF", name, 0)}
	c.AddParameter(ParamCavityLigandIdx, variant.Int(1))
	c.BindSelf(c)
	return c
}

// RawScore sums the squared out-of-cavity distance over every ligand atom,
// using the docking site registered with this term's workspace.
func (c *CavityRestraintSF) RawScore() float64 {
	ws := c.GetWorkSpace()
	if ws == nil {
		return 0
	}
	site := ws.GetDockingSite()
	if site == nil {
		return 0
	}
	ligandIdx := c.GetParameter(ParamCavityLigandIdx).AsInt()
	ligand, err := ws.GetModel(ligandIdx)
	if err != nil {
		return 0
	}
	var total float64
	for i := range ligand.Atoms {
		d := site.DistanceOutside(ligand.Atoms[i].Coord)
		total += d * d
	}
	return total
}

func (c *CavityRestraintSF) Score() float64 { return c.BaseSF.Score(c.RawScore()) }

func (c *CavityRestraintSF) ScoreMap(sm workspace.ScoreMap) {
	if !c.IsEnabled() {
		return
	}
	sm[c.GetFullName()] = c.RawScore()
	sm["score.total"] += c.Score()
}

// Update is a no-op: the docking site is long-lived relative to pose
// updates, so there is no per-model cache to invalidate here.
func (c *CavityRestraintSF) Update(object.Subject) {}
