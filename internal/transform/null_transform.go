package transform

// NullTransform does nothing when executed, used as an explicit
// placeholder step in a protocol file (e.g. to disable a stage without
// restructuring the aggregate) or as a default when no search stage has
// been configured yet.
type NullTransform struct {
	*BaseTransform
}

func NewNullTransform(name string) *NullTransform {
	n := &NullTransform{BaseTransform: NewBaseTransform("NullTransform", name)}
	n.BindSelf(n)
	return n
}

func (n *NullTransform) Execute() {}
