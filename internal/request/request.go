// Package request implements the typed request bus that lets a caller
// reconfigure part of the scoring-function tree (enable/disable a term,
// change its non-bonded partitioning distance, set a parameter) by
// broadcasting a Request to every object registered with the workspace.
// Each BaseObject decides independently whether a given request is
// addressed to it.
package request

import "github.com/sarat-asymmetrica/dockvedic/internal/variant"

// ID identifies the kind of request being broadcast.
type ID int

const (
	// Enable turns on the object whose fully-qualified name is params[0].
	Enable ID = iota + 1
	// Disable turns off the object whose fully-qualified name is params[0].
	Disable
	// Partition asks every BaseIdxSF-derived term to rebuild its indexed
	// interaction list using the given partition distance, or to clear
	// partitioning entirely when the distance is 0.
	Partition
	// SetParam sets a named parameter, either on every object (2-param
	// form: name, value) or on one addressed object (3-param form:
	// fullname, name, value).
	SetParam
)

// Request is a typed request broadcast through the SF/transform tree.
type Request struct {
	id     ID
	params []variant.Value
}

func (r Request) ID() ID                  { return r.id }
func (r Request) Params() []variant.Value { return r.params }

// NewEnable builds an Enable request addressed to fullName.
func NewEnable(fullName string) Request {
	return Request{id: Enable, params: []variant.Value{variant.String(fullName)}}
}

// NewDisable builds a Disable request addressed to fullName.
func NewDisable(fullName string) Request {
	return Request{id: Disable, params: []variant.Value{variant.String(fullName)}}
}

// NewPartition builds a broadcast Partition request with the given distance.
// A distance of 0 clears partitioning.
func NewPartition(dist float64) Request {
	return Request{id: Partition, params: []variant.Value{variant.Double(dist)}}
}

// NewPartitionFor builds a Partition request addressed to one named object.
func NewPartitionFor(fullName string, dist float64) Request {
	return Request{id: Partition, params: []variant.Value{
		variant.String(fullName), variant.Double(dist),
	}}
}

// NewSetParam builds a broadcast SetParam request (every object with a
// matching parameter name applies it).
func NewSetParam(paramName string, value variant.Value) Request {
	return Request{id: SetParam, params: []variant.Value{variant.String(paramName), value}}
}

// NewSetParamFor builds a SetParam request addressed to one named object.
func NewSetParamFor(fullName, paramName string, value variant.Value) Request {
	return Request{id: SetParam, params: []variant.Value{
		variant.String(fullName), variant.String(paramName), value,
	}}
}
