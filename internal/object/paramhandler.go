// Package object implements the parameter-handler and base-object layer
// every scoring function, transform, and the workspace itself builds on: a
// named, typed parameter bag plus enable/disable/trace bookkeeping and
// registration with a workspace so that SF_ENABLE/SF_DISABLE/SF_SETPARAM
// requests can address any object in the tree by name.
package object

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

// ParameterUpdateHook is invoked after a parameter value changes, letting a
// subclass mirror the new value into a strongly-typed field instead of
// calling GetParameter on every hot-path read.
type ParameterUpdateHook func(name string)

// ParamHandler is a named bag of typed parameters. It is embedded by
// BaseObject and used standalone wherever a smaller parameter surface is
// needed (e.g. grid mixins).
type ParamHandler struct {
	mu     sync.RWMutex
	params map[string]variant.Value
	order  []string
	onSet  ParameterUpdateHook
}

// NewParamHandler constructs an empty handler. onSet may be nil.
func NewParamHandler(onSet ParameterUpdateHook) *ParamHandler {
	return &ParamHandler{params: make(map[string]variant.Value), onSet: onSet}
}

// AddParameter registers a parameter with its default value. Re-adding an
// existing name overwrites the default without invoking the update hook,
// mirroring constructor-time initialization semantics.
func (p *ParamHandler) AddParameter(name string, def variant.Value) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.params[name]; !exists {
		p.order = append(p.order, name)
	}
	p.params[name] = def
}

// IsParameterValid reports whether name has been registered.
func (p *ParamHandler) IsParameterValid(name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.params[name]
	return ok
}

// GetParameter returns the current value of name, or the zero Value if
// unregistered.
func (p *ParamHandler) GetParameter(name string) variant.Value {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.params[name]
}

// SetParameter coerces raw against the existing parameter's kind (so a
// parameter-file string value lands as a double, int, or bool as
// appropriate) and fires the update hook. Returns a BadArgument error if
// name was never registered via AddParameter.
func (p *ParamHandler) SetParameter(name string, val variant.Value) error {
	p.mu.Lock()
	cur, ok := p.params[name]
	if !ok {
		p.mu.Unlock()
		return errs.BadArgument(fmt.Sprintf("unknown parameter %q", name))
	}
	// Coerce val into the registered kind so later AsDouble/AsInt/AsBool
	// reads behave consistently regardless of how the caller supplied it.
	coerced, err := variant.ParseAs(val.AsString(), cur)
	if err != nil {
		p.mu.Unlock()
		return errs.FileParseError(err.Error())
	}
	p.params[name] = coerced
	hook := p.onSet
	p.mu.Unlock()
	if hook != nil {
		hook(name)
	}
	return nil
}

// ParameterNames returns registered parameter names in registration order.
func (p *ParamHandler) ParameterNames() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// SortedParameterNames is a convenience for deterministic Print() output.
func (p *ParamHandler) SortedParameterNames() []string {
	names := p.ParameterNames()
	sort.Strings(names)
	return names
}
