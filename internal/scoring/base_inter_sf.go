package scoring

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
)

// BaseInterSF is the mixin for every term that scores an interaction
// between two distinct models (receptor vs. ligand, receptor vs. solvent):
// it holds the participant model indices and looks the models up by role
// from the registered workspace on every call, instead of by raw index.
type BaseInterSF struct {
	*BaseSF
	receptorIdx int
	ligandIdx   int
}

// NewBaseInterSF builds a BaseInterSF; receptorIdx/ligandIdx default to the
// conventional workspace layout (0 = receptor, 1 = ligand) but can be
// overridden with SetModelIndices for a multi-solvent workspace.
func NewBaseInterSF(class, name string, rng float64) *BaseInterSF {
	return &BaseInterSF{BaseSF: NewBaseSF(class, name, rng), receptorIdx: 0, ligandIdx: 1}
}

func (b *BaseInterSF) SetModelIndices(receptorIdx, ligandIdx int) {
	b.receptorIdx = receptorIdx
	b.ligandIdx = ligandIdx
}

// Receptor returns the receptor model from the registered workspace.
func (b *BaseInterSF) Receptor() (*model.Model, error) {
	ws := b.GetWorkSpace()
	if ws == nil {
		return nil, errs.InvalidRequest("scoring function not registered with a workspace")
	}
	return ws.GetModel(b.receptorIdx)
}

// Ligand returns the ligand model from the registered workspace.
func (b *BaseInterSF) Ligand() (*model.Model, error) {
	ws := b.GetWorkSpace()
	if ws == nil {
		return nil, errs.InvalidRequest("scoring function not registered with a workspace")
	}
	return ws.GetModel(b.ligandIdx)
}

// Solvents returns every model beyond the receptor/ligand pair, the
// workspace convention for explicit solvent molecules (model index 2+).
// Models with Inactive set are still returned so callers can tell an
// absent free-solvent sublist (no solvent models at all) apart from one
// that is merely disabled.
func (b *BaseInterSF) Solvents() []*model.Model {
	ws := b.GetWorkSpace()
	if ws == nil {
		return nil
	}
	lo := b.receptorIdx
	if b.ligandIdx > lo {
		lo = b.ligandIdx
	}
	return ws.GetModels(lo + 1)
}
