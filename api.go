package stockpile

// EntityID identifies an entity. IDs are dense from 0 upward and recycled
// after deletion; the handle itself carries no data.
type EntityID uint32

// TypeID identifies a component type for the lifetime of the process.
type TypeID uint16

// SystemID identifies a registered system within one ECS instance.
type SystemID uint16

// Group is an optional one-to-one tag on an entity.
type Group string

// GroupNone is the default group of a freshly created entity.
const GroupNone Group = ""

// RawPool is the capability interface the registry stores every pool behind.
// It exposes only the hook the delete broadcast fans out to; callers that know
// the component type recover the concrete pool via PoolOf.
type RawPool interface {
	DisableEntity(EntityID)
}

// System is a unit of behavior driven by the scheduler. Update receives the
// storage handle, the system's own id, and the milliseconds elapsed since the
// previous scheduler pass.
type System interface {
	Update(ecs *ECS, id SystemID, elapsed uint32)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(ecs *ECS, id SystemID, elapsed uint32)

func (f SystemFunc) Update(ecs *ECS, id SystemID, elapsed uint32) { f(ecs, id, elapsed) }
