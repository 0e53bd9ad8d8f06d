package stockpile

import "go.uber.org/zap"

// ECS owns one storage instance: the type-erased pool table, the entity
// allocator, the query engine, and the system scheduler. All structural
// mutation and queries on one instance must run on a single goroutine.
type ECS struct {
	pools    poolTable
	entities allocator
	queries  engine
	systems  []systemData
	queue    opQueue
	updating bool
	log      *zap.Logger
}

// CreateEntity returns a fresh or recycled entity id with no group tag.
func (ecs *ECS) CreateEntity() EntityID {
	return ecs.CreateEntityInGroup(GroupNone)
}

// CreateEntityInGroup returns a fresh or recycled entity id tagged with g.
// Recycled ids come back with no components of any type: DeleteEntity purged
// every pool before the id re-entered circulation.
func (ecs *ECS) CreateEntityInGroup(g Group) EntityID {
	return ecs.entities.create(g)
}

// DeleteEntity deactivates e, recycles its id, and broadcasts the removal to
// every registered pool so stale components never resurface on id reuse.
// Deleting an inactive or out-of-range id is a no-op.
func (ecs *ECS) DeleteEntity(e EntityID) {
	if !ecs.entities.release(e) {
		return
	}
	ecs.pools.disableEntity(e)
}

// IsActive reports whether e is currently live.
func (ecs *ECS) IsActive(e EntityID) bool {
	return ecs.entities.isActive(e)
}

// SetGroup overwrites e's group tag.
func (ecs *ECS) SetGroup(e EntityID, g Group) error {
	if !ecs.entities.isActive(e) {
		return InvalidEntityError{Entity: e}
	}
	ecs.entities.setGroup(e, g)
	return nil
}

// EntitiesInGroup returns the active entities tagged with g, ascending by id.
func (ecs *ECS) EntitiesInGroup(g Group) []EntityID {
	return ecs.entities.inGroup(g)
}

// AllOf returns the entities holding every listed component type, ascending by
// id with no duplicates.
func (ecs *ECS) AllOf(types ...TypeID) ([]EntityID, error) {
	return ecs.queries.allOf(types)
}

// AnyOf returns the entities holding at least one of the listed component
// types, ascending by id, each exactly once.
func (ecs *ECS) AnyOf(types ...TypeID) ([]EntityID, error) {
	return ecs.queries.anyOf(types)
}

// RegisterComponent creates an empty pool for T if none exists. Registering a
// type twice is not an error; the second call reports false and leaves the
// existing pool untouched.
func RegisterComponent[T any](ecs *ECS) bool {
	id := TypeOf[T]()
	if ecs.pools.exists(id) {
		return false
	}
	ecs.pools.register(id, newPool[T]())
	ecs.log.Debug("component registered",
		zap.String("type", typeLabel[T]()),
		zap.Uint16("type_id", uint16(id)))
	return true
}

// ComponentExists reports whether a pool for T has been registered.
func ComponentExists[T any](ecs *ECS) bool {
	return ecs.pools.exists(TypeOf[T]())
}

// PoolOf returns the typed pool for T, the escape hatch for bulk and raw
// access. It fails if T was never registered.
func PoolOf[T any](ecs *ECS) (*Pool[T], error) {
	raw := ecs.pools.get(TypeOf[T]())
	if raw == nil {
		return nil, UnregisteredComponentError{Type: typeLabel[T]()}
	}
	return raw.(*Pool[T]), nil
}

// AddComponent attaches a zero-valued T to e and returns it for
// initialization. The pointer stays valid only until the next structural
// mutation of T's pool.
func AddComponent[T any](ecs *ECS, e EntityID) (*T, error) {
	if !ecs.entities.isActive(e) {
		return nil, InvalidEntityError{Entity: e}
	}
	pool, err := PoolOf[T](ecs)
	if err != nil {
		return nil, err
	}
	return pool.Add(e)
}

// GetComponent returns the T attached to e.
func GetComponent[T any](ecs *ECS, e EntityID) (*T, error) {
	if !ecs.entities.isActive(e) {
		return nil, InvalidEntityError{Entity: e}
	}
	pool, err := PoolOf[T](ecs)
	if err != nil {
		return nil, err
	}
	if !pool.Has(e) {
		return nil, NotAttachedError{Entity: e, Type: typeLabel[T]()}
	}
	return pool.Get(e), nil
}

// RemoveComponent detaches T from e. Unlike the bare Pool.Remove, a missing
// attachment is reported rather than ignored, so caller mistakes don't vanish
// silently.
func RemoveComponent[T any](ecs *ECS, e EntityID) error {
	if !ecs.entities.isActive(e) {
		return InvalidEntityError{Entity: e}
	}
	pool, err := PoolOf[T](ecs)
	if err != nil {
		return err
	}
	if !pool.Has(e) {
		return NotAttachedError{Entity: e, Type: typeLabel[T]()}
	}
	pool.Remove(e)
	return nil
}

// HasComponent reports whether the active entity e holds a T. Inactive
// entities and unregistered types report false.
func HasComponent[T any](ecs *ECS, e EntityID) bool {
	if !ecs.entities.isActive(e) {
		return false
	}
	pool, err := PoolOf[T](ecs)
	if err != nil {
		return false
	}
	return pool.Has(e)
}
