package object

// Subject is implemented by anything that maintains a list of Observers and
// notifies them of state changes — concretely the workspace, which notifies
// registered scoring functions and transforms whenever a model, SF, or
// transform is replaced.
type Subject interface {
	Attach(o Observer)
	Detach(o Observer)
}

// Observer is implemented by anything that registers with a Subject.
// Update fires on a general state-change notification; Deleted fires once,
// just before the subject itself is torn down, so the observer can
// unregister cleanly instead of holding a dangling reference.
type Observer interface {
	Update(s Subject)
	Deleted(s Subject)
}
