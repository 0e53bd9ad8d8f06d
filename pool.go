package stockpile

import "slices"

const (
	// nullIndex marks a sparse slot with no attached component.
	nullIndex = ^uint32(0)

	// minSparseLen is the initial sparse-array size; growth doubles from here
	// until the slot for the requested entity id exists. Sizing follows id
	// magnitude, not entity count, to keep every lookup a direct index.
	minSparseLen = 8192
)

// denseEntry pairs a component value with its owning entity.
type denseEntry[T any] struct {
	value  T
	entity EntityID
}

// Pool owns every live instance of one component type. The packed dense array
// plus the sparse entity-indexed lookup give O(1) attach, detach, and
// membership checks; detach reorders the dense array (swap-and-pop), so the
// pool also keeps a sorted snapshot of its entities for stable iteration.
type Pool[T any] struct {
	dense  []denseEntry[T]
	sparse []uint32
	cached []EntityID
	dirty  bool
}

func newPool[T any]() *Pool[T] {
	return &Pool[T]{dirty: true}
}

// Has reports whether e has a component in this pool.
func (p *Pool[T]) Has(e EntityID) bool {
	return int(e) < len(p.sparse) && p.sparse[e] != nullIndex
}

// Add attaches a zero-valued T to e and returns a pointer to it for
// initialization. The pointer stays valid only until the next Add or Remove
// on this pool, because later removals may relocate packed entries.
func (p *Pool[T]) Add(e EntityID) (*T, error) {
	if p.Has(e) {
		return nil, AlreadyAttachedError{Entity: e, Type: typeLabel[T]()}
	}
	if int(e) >= len(p.sparse) {
		p.growSparse(e)
	}
	idx := uint32(len(p.dense))
	p.dense = append(p.dense, denseEntry[T]{entity: e})
	p.sparse[e] = idx
	p.dirty = true
	return &p.dense[idx].value, nil
}

// Remove detaches e's component, moving the last packed entry into the vacated
// slot so the dense array stays contiguous. Removing an absent component is a
// no-op; the facade variant is the one that reports it.
func (p *Pool[T]) Remove(e EntityID) {
	if !p.Has(e) {
		return
	}
	idx := p.sparse[e]
	last := uint32(len(p.dense) - 1)
	if idx != last {
		p.dense[idx] = p.dense[last]
		p.sparse[p.dense[idx].entity] = idx
	}
	p.dense[last] = denseEntry[T]{} // release anything the vacated slot points at
	p.dense = p.dense[:last]
	p.sparse[e] = nullIndex
	p.dirty = true
}

// Get returns the component attached to e. It performs no existence check on
// this hot path; callers must have validated with Has, or go through the
// facade accessors which do.
func (p *Pool[T]) Get(e EntityID) *T {
	return &p.dense[p.sparse[e]].value
}

// ActiveEntities returns the entities holding this component, ascending by id.
// The result is a snapshot: it is recomputed from the packed array only when a
// mutation has occurred since the previous call, and a slice already handed
// out is never modified by later mutations.
func (p *Pool[T]) ActiveEntities() []EntityID {
	if p.dirty {
		p.cached = make([]EntityID, len(p.dense))
		for i := range p.dense {
			p.cached[i] = p.dense[i].entity
		}
		slices.Sort(p.cached)
		p.dirty = false
	}
	return p.cached
}

// DisableEntity is the hook the registry broadcast fans out to when an entity
// is deleted. It is an alias for Remove.
func (p *Pool[T]) DisableEntity(e EntityID) {
	p.Remove(e)
}

// Len returns the number of entities holding this component.
func (p *Pool[T]) Len() int {
	return len(p.dense)
}

func (p *Pool[T]) growSparse(e EntityID) {
	n := len(p.sparse)
	if n == 0 {
		n = minSparseLen
	}
	for n <= int(e) {
		n <<= 1
	}
	grown := make([]uint32, n)
	copy(grown, p.sparse)
	for i := len(p.sparse); i < n; i++ {
		grown[i] = nullIndex
	}
	p.sparse = grown
}
