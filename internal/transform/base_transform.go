// Package transform implements the search transforms that drive a
// workspace's chromosome toward a good pose: NullTransform (a no-op used
// as a placeholder or a TransformAgg leaf), RandomPopTransform (population
// seeding), SimAnnTransform (simulated annealing with adaptive step
// sizing), SimplexTransform (local Nelder-Mead refinement), and
// GATransform (the genetic-algorithm search loop). TransformAgg composes
// any of these into a pipeline, the way a parameter file's protocol
// section chains annealing into a GA into a final simplex polish.
package transform

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// Step is implemented by every concrete transform (leaf or aggregate).
type Step interface {
	object.Observer
	GetFullName() string
	GetClass() string
	IsEnabled() bool
	Execute()
	HandleRequest(request.Request)
}

// BaseTransform is embedded by every concrete transform. It mirrors
// scoring.BaseSF's registration and request-handling machinery, since both
// families build on the same object.BaseObject foundation.
type BaseTransform struct {
	*object.BaseObject
	ws   *workspace.WorkSpace
	self Step
}

func NewBaseTransform(class, name string) *BaseTransform {
	return &BaseTransform{BaseObject: object.NewBaseObject(class, name)}
}

// BindSelf records the concrete Step so Register/Unregister/Deleted attach
// the right Observer identity to the workspace.
func (b *BaseTransform) BindSelf(self Step) { b.self = self }

func (b *BaseTransform) Register(ws *workspace.WorkSpace) {
	b.ws = ws
	b.BaseObject.Register(ws, b.self)
}

func (b *BaseTransform) Unregister() {
	b.BaseObject.Unregister(b.self)
	b.ws = nil
}

func (b *BaseTransform) GetWorkSpace() *workspace.WorkSpace { return b.ws }

func (b *BaseTransform) Deleted(s object.Subject) {
	if b.self != nil {
		b.BaseObject.Deleted(s, b.self)
	}
}

func (b *BaseTransform) HandleRequest(r request.Request) {
	b.BaseObject.HandleRequest(r)
}
