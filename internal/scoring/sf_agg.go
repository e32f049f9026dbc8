package scoring

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// SFAgg aggregates a set of child terms (leaves or nested aggregates) into
// a single Term whose RawScore is the weighted sum of its children's
// scores and whose ScoreMap reports every child alongside the running
// total, the composite shape a parameter file's SCORING_FUNCTION section
// builds via prmfile's factory.
type SFAgg struct {
	*BaseSF
	children []Term
}

// NewSFAgg constructs an empty aggregate; children are added with Add as
// the factory walks the parameter file's term list.
func NewSFAgg(name string) *SFAgg {
	a := &SFAgg{BaseSF: NewBaseSF("SFAgg", name, 0)}
	a.BindSelf(a)
	a.SetFullNamer(a.fullName)
	return a
}

func (a *SFAgg) fullName() string { return a.GetName() }

// Add appends a child term. The child's full name is left unchanged (its
// own name, not prefixed with this aggregate's), so SetParam/Enable
// requests address a leaf by that bare name, and two leaves with the same
// name under different aggregates answer to the same address.
func (a *SFAgg) Add(child Term) {
	a.children = append(a.children, child)
}

func (a *SFAgg) Children() []Term { return a.children }

// Register registers the aggregate and every child with ws, mirroring the
// way a C++ aggregate owns its children's lifetime.
func (a *SFAgg) Register(ws *workspace.WorkSpace) {
	a.BaseSF.Register(ws)
	for _, c := range a.children {
		if r, ok := c.(interface{ Register(*workspace.WorkSpace) }); ok {
			r.Register(ws)
		}
	}
}

// RawScore sums every enabled child's weighted Score (children apply
// their own weight, so the aggregate itself carries no separate weight
// term by default).
func (a *SFAgg) RawScore() float64 {
	var total float64
	for _, c := range a.children {
		if c.IsEnabled() {
			total += c.Score()
		}
	}
	return total
}

func (a *SFAgg) Score() float64 { return a.RawScore() }

// ScoreMap lets every child accumulate its own raw score and its weighted
// contribution to score.total, then records this aggregate's own entry as
// the weighted sum of its children's scores (Sigma w_i * raw_score(c_i)),
// matching what RawScore/Score already compute.
func (a *SFAgg) ScoreMap(sm workspace.ScoreMap) {
	for _, c := range a.children {
		c.ScoreMap(sm)
	}
	sm[a.GetFullName()] = a.Score()
}

// HandleRequest forwards every request to each child in addition to
// handling ones addressed to the aggregate itself.
func (a *SFAgg) HandleRequest(r request.Request) {
	a.BaseSF.HandleRequest(r)
	for _, c := range a.children {
		c.HandleRequest(r)
	}
}

// Update forwards workspace-change notifications to every child that
// cares (VdwIdxSF/PolarIdxSF rebuild their grids; most others ignore it).
func (a *SFAgg) Update(s object.Subject) {
	for _, c := range a.children {
		c.Update(s)
	}
}
