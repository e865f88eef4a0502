package curve

// ReferenceRegistry owns the system-wide "at most one reference curve"
// invariant. Curves are tracked by an opaque comparable identifier;
// the registry never stores the curves themselves.
//
// Analysis code does not consult the registry: the similarity scorer
// takes its reference curve as an explicit argument. The registry
// exists so the collaborator that selects references has a single
// place where replacing the holder clears the previous one.
//
// The zero value is an empty registry. Not safe for concurrent use;
// the owning collaborator serializes access.
type ReferenceRegistry[K comparable] struct {
	id  K
	set bool
}

// Set designates id as the reference. Any previous holder is cleared
// and returned with replaced == true.
func (r *ReferenceRegistry[K]) Set(id K) (prev K, replaced bool) {
	prev, replaced = r.id, r.set
	r.id = id
	r.set = true
	return prev, replaced
}

// Clear removes the current holder, if any, and returns it.
func (r *ReferenceRegistry[K]) Clear() (K, bool) {
	prev, had := r.id, r.set
	var zero K
	r.id = zero
	r.set = false
	return prev, had
}

// Current returns the current holder, if any.
func (r *ReferenceRegistry[K]) Current() (K, bool) {
	return r.id, r.set
}
