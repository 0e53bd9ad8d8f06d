package stockpile

import "slices"

// queryable is the view of a pool that query evaluation needs beyond the
// DisableEntity capability the registry stores. Every Pool[T] satisfies it.
type queryable interface {
	Has(EntityID) bool
	ActiveEntities() []EntityID
	Len() int
}

// engine computes entity sets across pools.
type engine struct {
	pools *poolTable
}

func (qe *engine) resolve(types []TypeID) ([]queryable, error) {
	pools := make([]queryable, len(types))
	for i, t := range types {
		raw := qe.pools.get(t)
		if raw == nil {
			return nil, UnregisteredComponentError{Type: typeName(t)}
		}
		pools[i] = raw.(queryable)
	}
	return pools, nil
}

// allOf returns the entities present in every listed pool, ascending by id
// with no duplicates. The smallest pool seeds the candidate set; every other
// pool then only answers O(1) membership checks. An empty type list resolves
// to an empty result.
func (qe *engine) allOf(types []TypeID) ([]EntityID, error) {
	pools, err := qe.resolve(types)
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, nil
	}
	seed := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].Len() < pools[seed].Len() {
			seed = i
		}
	}
	result := make([]EntityID, 0, pools[seed].Len())
	for _, e := range pools[seed].ActiveEntities() {
		keep := true
		for i, p := range pools {
			if i == seed {
				continue
			}
			if !p.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			result = append(result, e)
		}
	}
	return result, nil
}

// anyOf returns the entities present in at least one listed pool, ascending by
// id, each exactly once. An empty type list resolves to an empty result.
func (qe *engine) anyOf(types []TypeID) ([]EntityID, error) {
	pools, err := qe.resolve(types)
	if err != nil {
		return nil, err
	}
	if len(pools) == 0 {
		return nil, nil
	}
	var merged []EntityID
	for _, p := range pools {
		merged = append(merged, p.ActiveEntities()...)
	}
	slices.Sort(merged)
	return slices.Compact(merged), nil
}
