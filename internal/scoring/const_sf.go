package scoring

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// ConstSF contributes a fixed value regardless of pose, used to bias the
// total score by a per-ligand offset (e.g. a precomputed desolvation
// penalty supplied outside the geometric scoring terms) without every
// other term needing to know about it.
type ConstSF struct {
	*BaseSF
}

func NewConstSF(name string, value float64) *ConstSF {
	c := &ConstSF{BaseSF: NewBaseSF("ConstSF", name, 0)}
	c.AddParameter("VALUE", variant.Double(value))
	c.BindSelf(c)
	return c
}

func (c *ConstSF) RawScore() float64 { return c.GetParameter("VALUE").AsDouble() }
func (c *ConstSF) Score() float64    { return c.BaseSF.Score(c.RawScore()) }

func (c *ConstSF) ScoreMap(sm workspace.ScoreMap) {
	if !c.IsEnabled() {
		return
	}
	sm[c.GetFullName()] = c.RawScore()
	sm["score.total"] += c.Score()
}
