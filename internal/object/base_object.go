package object

import (
	"github.com/sarat-asymmetrica/dockvedic/internal/request"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

const (
	ParamClass   = "CLASS"
	ParamName    = "NAME"
	ParamEnabled = "ENABLED"
	ParamTrace   = "TRACE"
)

// Named is the minimal naming contract BaseObject extends; GetFullName is
// GetName unless a SetFullNamer override is installed, and no aggregate in
// this module prefixes a parent's name onto it.
type Named interface {
	GetName() string
	GetFullName() string
}

// BaseObject is embedded by every scoring function and transform. It owns a
// ParamHandler for CLASS/NAME/ENABLED/TRACE plus subclass-specific
// parameters, tracks workspace registration, and implements the
// enable/disable/set-param cases of the request protocol that every object
// understands regardless of subtype.
type BaseObject struct {
	*ParamHandler
	class     string
	enabled   bool
	trace     int
	workspace Subject
	// fullNamer lets a concrete type (e.g. an aggregate) override
	// GetFullName without BaseObject needing to know about it statically.
	fullNamer func() string
}

// NewBaseObject constructs a BaseObject of the given class and instance
// name, registering the CLASS/NAME/ENABLED/TRACE parameters the way every
// RbtBaseObject subclass does in its constructor.
func NewBaseObject(class, name string) *BaseObject {
	o := &BaseObject{class: class, enabled: true}
	o.ParamHandler = NewParamHandler(o.parameterUpdated)
	o.AddParameter(ParamClass, variant.String(class))
	o.AddParameter(ParamName, variant.String(name))
	o.AddParameter(ParamEnabled, variant.Bool(true))
	o.AddParameter(ParamTrace, variant.Int(0))
	return o
}

func (o *BaseObject) parameterUpdated(name string) {
	switch name {
	case ParamEnabled:
		o.enabled = o.GetParameter(ParamEnabled).AsBool()
	case ParamTrace:
		o.trace = o.GetParameter(ParamTrace).AsInt()
	}
}

func (o *BaseObject) GetClass() string { return o.class }
func (o *BaseObject) GetName() string  { return o.GetParameter(ParamName).AsString() }
func (o *BaseObject) SetName(name string) {
	_ = o.SetParameter(ParamName, variant.String(name))
}

// GetFullName returns the name used to address this object in
// ENABLE/DISABLE/SETPARAM requests: the SetFullNamer override if one is
// installed, otherwise GetName. Aggregates do not prepend their own name.
func (o *BaseObject) GetFullName() string {
	if o.fullNamer != nil {
		return o.fullNamer()
	}
	return o.GetName()
}

// SetFullNamer installs a function GetFullName returns in place of
// GetName, without BaseObject depending on the caller's type.
func (o *BaseObject) SetFullNamer(f func() string) { o.fullNamer = f }

func (o *BaseObject) Enable()         { _ = o.SetParameter(ParamEnabled, variant.Bool(true)) }
func (o *BaseObject) Disable()        { _ = o.SetParameter(ParamEnabled, variant.Bool(false)) }
func (o *BaseObject) IsEnabled() bool { return o.enabled }

func (o *BaseObject) GetTrace() int      { return o.trace }
func (o *BaseObject) SetTrace(trace int) { _ = o.SetParameter(ParamTrace, variant.Int(trace)) }

// Register attaches this object to a workspace, first unregistering from
// any prior workspace.
func (o *BaseObject) Register(ws Subject, self Observer) {
	o.Unregister(self)
	o.workspace = ws
	if ws != nil {
		ws.Attach(self)
	}
}

// Unregister detaches this object from its current workspace, if any.
func (o *BaseObject) Unregister(self Observer) {
	if o.workspace != nil {
		o.workspace.Detach(self)
	}
	o.workspace = nil
}

// GetWorkSpace returns the attached workspace Subject, or nil.
func (o *BaseObject) GetWorkSpace() Subject { return o.workspace }

// Update is the default Observer hook: base objects ignore general update
// notifications (only concrete SF/transform types that cache model data
// need to react).
func (o *BaseObject) Update(Subject) {}

// Deleted unregisters if the subject being torn down is the workspace this
// object is currently attached to.
func (o *BaseObject) Deleted(s Subject, self Observer) {
	if s == o.workspace {
		o.Unregister(self)
	}
}

// HandleRequest implements the Enable/Disable/SetParam cases common to
// every object; Partition is left to BaseIdxSF-derived subclasses, and
// subclasses call this as a fallback from their own HandleRequest after
// handling any subclass-specific request IDs.
func (o *BaseObject) HandleRequest(r request.Request) {
	params := r.Params()
	switch r.ID() {
	case request.Enable:
		if len(params) == 1 && params[0].AsString() == o.GetFullName() {
			o.Enable()
		}
	case request.Disable:
		if len(params) == 1 && params[0].AsString() == o.GetFullName() {
			o.Disable()
		}
	case request.SetParam:
		switch len(params) {
		case 3:
			if params[0].AsString() == o.GetFullName() && o.IsParameterValid(params[1].AsString()) {
				_ = o.SetParameter(params[1].AsString(), params[2])
			}
		case 2:
			if o.IsParameterValid(params[0].AsString()) {
				_ = o.SetParameter(params[0].AsString(), params[1])
			}
		}
	default:
		// Ignore all other requests; subclasses handle Partition etc.
	}
}
