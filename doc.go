/*
Package stockpile provides a sparse-set Entity-Component-System (ECS) storage
engine for games and simulations.

Stockpile keeps every component type in its own pool: a packed array of
(component, entity) pairs plus a sparse entity-indexed lookup. Attach, detach,
and membership checks are O(1); detaching swaps the last packed element into
the vacated slot, so iteration order over a pool is unspecified and each pool
maintains a sorted, lazily recomputed snapshot of the entities it holds.

Core Concepts:

  - Entity: a unique integer handle that represents a game object.
  - Component: a typed value attached to at most one entity at a time.
  - Pool: per-type storage holding all (entity, component) pairs for one type.
  - Query: an AllOf/AnyOf combination of component types resolving to entities.
  - System: a unit of behavior the scheduler runs against the storage each tick.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ DX, DY float64 }

	ecs := stockpile.New()
	stockpile.RegisterComponent[Position](ecs)
	stockpile.RegisterComponent[Velocity](ecs)

	e := ecs.CreateEntity()
	pos, _ := stockpile.AddComponent[Position](ecs, e)
	pos.X = 4

	movers, _ := ecs.AllOf(stockpile.TypeOf[Position](), stockpile.TypeOf[Velocity]())
	for _, e := range movers {
		pos, _ := stockpile.GetComponent[Position](ecs, e)
		vel, _ := stockpile.GetComponent[Velocity](ecs, e)
		pos.X += vel.DX
		pos.Y += vel.DY
	}

An ECS instance is single-threaded: all structural mutation and all queries
must be externally serialized by the caller. Only component type-id assignment
(TypeOf) is safe to call concurrently. Pointers returned by AddComponent,
GetComponent, and Pool.Get stay valid only until the next Add or Remove on the
same pool, because later removals may relocate packed entries.
*/
package stockpile
