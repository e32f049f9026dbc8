// Package scoring implements the scoring-function tree: BaseSF (the common
// weight/range/enabled machinery every term shares), SFAgg (the composite
// that sums its children), BaseInterSF (receptor/ligand/solvent model
// lookup by role), BaseIdxSF (indexed-grid construction), and the two physical
// terms named in full: VdwIdxSF (grid-indexed van der Waals) and
// PolarIdxSF (directional hydrogen-bond / ionic term).
package scoring

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

const (
	ParamWeight = "WEIGHT"
	ParamRange  = "RANGE"
)

// Term is implemented by every concrete scoring function (leaf or
// aggregate); BaseSF provides a default implementation of everything
// except RawScore, which each leaf supplies.
type Term interface {
	object.Observer
	GetFullName() string
	GetClass() string
	IsEnabled() bool
	Weight() float64
	Range() float64
	// RawScore computes this term's unweighted score from current model
	// coordinates.
	RawScore() float64
	// Score returns weight*RawScore if enabled, else 0.
	Score() float64
	// ScoreMap accumulates this term's contribution (and its children's,
	// for an aggregate) under component-named keys plus "score.total".
	ScoreMap(workspace.ScoreMap)
	HandleRequest(request.Request)
}

// BaseSF is embedded by every concrete term. It owns the common
// WEIGHT/RANGE parameters, delegates enable/disable/setparam handling to
// object.BaseObject, and tracks the workspace as a concrete *workspace.
// WorkSpace (rather than the narrower object.Subject) so subclasses can
// reach GetModels/GetDockingSite/GetSF without a type assertion.
type BaseSF struct {
	*object.BaseObject
	ws   *workspace.WorkSpace
	self Term // set by the concrete subclass's constructor for Deleted/Update dispatch
}

// NewBaseSF constructs a BaseSF with the given class/name and the term's
// physical interaction range in Angstroms (the distance beyond which its
// contribution is defined to be exactly zero).
func NewBaseSF(class, name string, rng float64) *BaseSF {
	b := &BaseSF{BaseObject: object.NewBaseObject(class, name)}
	b.AddParameter(ParamWeight, variant.Double(1.0))
	b.AddParameter(ParamRange, variant.Double(rng))
	return b
}

// BindSelf records the concrete Term so Register/Unregister/Deleted attach
// the right Observer identity to the workspace.
func (b *BaseSF) BindSelf(self Term) { b.self = self }

func (b *BaseSF) Weight() float64 { return b.GetParameter(ParamWeight).AsDouble() }
func (b *BaseSF) Range() float64  { return b.GetParameter(ParamRange).AsDouble() }

// Register attaches this term to ws, both via object.BaseObject's
// bookkeeping and by retaining the concrete pointer for GetWorkSpace.
func (b *BaseSF) Register(ws *workspace.WorkSpace) {
	b.ws = ws
	b.BaseObject.Register(ws, b.self)
}

func (b *BaseSF) Unregister() {
	b.BaseObject.Unregister(b.self)
	b.ws = nil
}

// GetWorkSpace returns the concrete workspace this term is registered
// with, or nil.
func (b *BaseSF) GetWorkSpace() *workspace.WorkSpace { return b.ws }

// Deleted satisfies object.Observer; BaseObject.Deleted needs the self
// Observer identity, which Register recorded via BindSelf.
func (b *BaseSF) Deleted(s object.Subject) {
	if b.self != nil {
		b.BaseObject.Deleted(s, b.self)
	}
}

// Score returns weight*RawScore() when enabled, 0 otherwise. raw is
// supplied by the concrete subclass since BaseSF has no RawScore of its
// own (it is not itself a usable Term).
func (b *BaseSF) Score(raw float64) float64 {
	if !b.IsEnabled() {
		return 0
	}
	return b.Weight() * raw
}

// HandleRequest applies the generic Enable/Disable/SetParam handling
// common to every term; BaseIdxSF overrides this to also honour Partition.
func (b *BaseSF) HandleRequest(r request.Request) {
	b.BaseObject.HandleRequest(r)
}
