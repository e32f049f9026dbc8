// Package workspace implements the central WorkSpace: the Subject every
// scoring function and transform registers with, and the single place that
// holds the current models, scoring function, transform, population, and
// docking site. SF/Transform/Population are declared here as interfaces
// (structurally satisfied by internal/scoring, internal/transform, and
// internal/population) rather than imported by name, so this package has
// no dependency on any of them and they can freely depend on it.
package workspace

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/site"
)

// ScoreMap accumulates named component scores; total is the sum of every
// enabled, weighted leaf.
type ScoreMap map[string]float64

// SF is the scoring-function contract the workspace depends on.
type SF interface {
	object.Observer
	Score() float64
	ScoreMap(ScoreMap)
	HandleRequest(request.Request)
	GetFullName() string
}

// Transform is the search-transform contract the workspace depends on.
type Transform interface {
	object.Observer
	Execute()
	GetFullName() string
}

// Population is the GA population contract the workspace depends on.
type Population interface {
	MaxSize() int
}

// Sink is the destination for a scored pose, the driver-facing boundary
// spec'd out of the core search algorithms; the CLI supplies a concrete
// implementation (internal/dockio).
type Sink interface {
	Render(m *model.Model, scores ScoreMap) error
}

// WorkSpace is the Subject in the Subject/Observer graph: it holds the
// current search state and notifies every attached Observer whenever a
// model, SF, or transform is replaced.
type WorkSpace struct {
	models []*model.Model
	sink   Sink
	hisSink Sink
	sf        SF
	transform Transform
	population Population
	dockingSite *site.DockingSite

	observers []object.Observer
}

// New constructs an empty WorkSpace.
func New() *WorkSpace { return &WorkSpace{} }

// Attach registers an Observer to receive Update/Deleted notifications.
func (w *WorkSpace) Attach(o object.Observer) {
	for _, existing := range w.observers {
		if existing == o {
			return
		}
	}
	w.observers = append(w.observers, o)
}

// Detach removes an Observer. A no-op if o was never attached.
func (w *WorkSpace) Detach(o object.Observer) {
	for i, existing := range w.observers {
		if existing == o {
			w.observers = append(w.observers[:i], w.observers[i+1:]...)
			return
		}
	}
}

func (w *WorkSpace) notify() {
	for _, o := range w.observers {
		o.Update(w)
	}
}

// GetNumModels returns the number of registered models.
func (w *WorkSpace) GetNumModels() int { return len(w.models) }

// GetModel returns the model at i, or a ModelError if i is out of range.
func (w *WorkSpace) GetModel(i int) (*model.Model, error) {
	if i < 0 || i >= len(w.models) {
		return nil, errs.ModelError("model index out of range")
	}
	return w.models[i], nil
}

// SetModel replaces the model at i and notifies observers so cached
// per-model data (e.g. a VdW term's indexed grids) gets rebuilt.
func (w *WorkSpace) SetModel(i int, m *model.Model) error {
	if i < 0 || i >= len(w.models) {
		return errs.ModelError("model index out of range")
	}
	w.models[i] = m
	w.notify()
	return nil
}

// AddModels appends models and notifies observers.
func (w *WorkSpace) AddModels(models ...*model.Model) {
	w.models = append(w.models, models...)
	w.notify()
}

// SetModels replaces the entire model list and notifies observers.
func (w *WorkSpace) SetModels(models []*model.Model) {
	w.models = models
	w.notify()
}

// GetModels returns the models starting at iModel (0 returns all).
func (w *WorkSpace) GetModels(iModel int) []*model.Model {
	if iModel < 0 || iModel >= len(w.models) {
		return nil
	}
	return w.models[iModel:]
}

// RemoveModels truncates the model list to iModel entries and notifies.
func (w *WorkSpace) RemoveModels(iModel int) {
	if iModel < 0 || iModel > len(w.models) {
		return
	}
	w.models = w.models[:iModel]
	w.notify()
}

func (w *WorkSpace) GetSink() Sink      { return w.sink }
func (w *WorkSpace) SetSink(s Sink)     { w.sink = s }
func (w *WorkSpace) GetHisSink() Sink   { return w.hisSink }
func (w *WorkSpace) SetHisSink(s Sink)  { w.hisSink = s }

// Save renders the current best pose to the sink, if one is attached.
func (w *WorkSpace) Save() error {
	if w.sink == nil || len(w.models) == 0 {
		return nil
	}
	sm := make(ScoreMap)
	if w.sf != nil {
		w.sf.ScoreMap(sm)
	}
	return w.sink.Render(w.models[0], sm)
}

// SaveHistory renders an intermediate pose to the history sink during a
// long-running transform, optionally including the full component score
// breakdown.
func (w *WorkSpace) SaveHistory(withComponents bool) error {
	if w.hisSink == nil || len(w.models) == 0 {
		return nil
	}
	sm := make(ScoreMap)
	if withComponents && w.sf != nil {
		w.sf.ScoreMap(sm)
	}
	return w.hisSink.Render(w.models[0], sm)
}

// GetSF returns the current scoring function, or nil.
func (w *WorkSpace) GetSF() SF { return w.sf }

// SetSF detaches any prior SF as an observer, installs sf as the active
// scoring function, attaches it as an observer, and notifies so every
// observer (including sf itself) picks up the current model state.
func (w *WorkSpace) SetSF(sf SF) {
	if w.sf != nil {
		w.Detach(w.sf)
	}
	w.sf = sf
	if sf != nil {
		w.Attach(sf)
	}
	w.notify()
}

// GetTransform returns the current transform, or nil.
func (w *WorkSpace) GetTransform() Transform { return w.transform }

// SetTransform detaches any prior transform as an observer, installs t as
// the active transform, attaches it as an observer, and notifies, the same
// contract as SetSF.
func (w *WorkSpace) SetTransform(t Transform) {
	if w.transform != nil {
		w.Detach(w.transform)
	}
	w.transform = t
	if t != nil {
		w.Attach(t)
	}
	w.notify()
}

// Run executes the current transform, if any.
func (w *WorkSpace) Run() {
	if w.transform != nil {
		w.transform.Execute()
	}
}

func (w *WorkSpace) SetPopulation(p Population)  { w.population = p }
func (w *WorkSpace) GetPopulation() Population   { return w.population }
func (w *WorkSpace) ClearPopulation()            { w.population = nil }

func (w *WorkSpace) GetDockingSite() *site.DockingSite  { return w.dockingSite }
func (w *WorkSpace) SetDockingSite(ds *site.DockingSite) { w.dockingSite = ds; w.notify() }
