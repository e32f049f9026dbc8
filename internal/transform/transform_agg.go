package transform

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// TransformAgg runs a fixed sequence of child transforms, the shape a
// parameter file's PROTOCOL section builds: e.g. RandomPopTransform to
// seed, SimAnnTransform to anneal, GATransform to refine, SimplexTransform
// for a final local polish.
type TransformAgg struct {
	*BaseTransform
	children []Step
}

func NewTransformAgg(name string) *TransformAgg {
	a := &TransformAgg{BaseTransform: NewBaseTransform("TransformAgg", name)}
	a.BindSelf(a)
	return a
}

func (a *TransformAgg) Add(child Step) { a.children = append(a.children, child) }
func (a *TransformAgg) Children() []Step { return a.children }

func (a *TransformAgg) Register(ws *workspace.WorkSpace) {
	a.BaseTransform.Register(ws)
	for _, c := range a.children {
		if r, ok := c.(interface{ Register(*workspace.WorkSpace) }); ok {
			r.Register(ws)
		}
	}
}

// Execute runs every enabled child transform in order.
func (a *TransformAgg) Execute() {
	for _, c := range a.children {
		if c.IsEnabled() {
			c.Execute()
		}
	}
}

func (a *TransformAgg) HandleRequest(r request.Request) {
	a.BaseTransform.HandleRequest(r)
	for _, c := range a.children {
		c.HandleRequest(r)
	}
}

func (a *TransformAgg) Update(s object.Subject) {
	for _, c := range a.children {
		c.Update(s)
	}
}
