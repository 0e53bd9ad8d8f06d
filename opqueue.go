package stockpile

import "go.uber.org/zap"

type operationType int

const (
	opDestroy operationType = iota
	opRemoveComponent
)

type operation struct {
	typ       operationType
	entity    EntityID
	component TypeID
}

// opQueue collects structural mutations enqueued during a scheduler pass so
// they apply after every due system has run, instead of mid-iteration.
type opQueue struct {
	ops            []operation
	pendingDestroy map[EntityID]struct{}
}

func newOpQueue() opQueue {
	return opQueue{pendingDestroy: make(map[EntityID]struct{})}
}

// EnqueueDestroy defers DeleteEntity(e) to the end of the current scheduler
// pass. Outside a pass it applies immediately. Enqueueing the same entity
// twice collapses into one destroy.
func (ecs *ECS) EnqueueDestroy(e EntityID) {
	if !ecs.updating {
		ecs.DeleteEntity(e)
		return
	}
	if _, queued := ecs.queue.pendingDestroy[e]; queued {
		return
	}
	ecs.queue.pendingDestroy[e] = struct{}{}
	ecs.queue.ops = append(ecs.queue.ops, operation{typ: opDestroy, entity: e})
}

// EnqueueRemove defers detaching component type t from e. Removals against an
// entity already pending destroy are dropped; the destroy purges everything.
// Unknown types and absent attachments are tolerated, matching Pool.Remove.
func (ecs *ECS) EnqueueRemove(e EntityID, t TypeID) {
	if !ecs.updating {
		if p := ecs.pools.get(t); p != nil {
			p.DisableEntity(e)
		}
		return
	}
	if _, doomed := ecs.queue.pendingDestroy[e]; doomed {
		return
	}
	ecs.queue.ops = append(ecs.queue.ops, operation{typ: opRemoveComponent, entity: e, component: t})
}

// flushQueue applies component removals first and destroys last, mirroring the
// enqueue-time filtering (a destroy subsumes any removal for the same entity).
func (ecs *ECS) flushQueue() {
	if len(ecs.queue.ops) == 0 {
		return
	}
	destroyed := 0
	for _, op := range ecs.queue.ops {
		if op.typ != opRemoveComponent {
			continue
		}
		if p := ecs.pools.get(op.component); p != nil {
			p.DisableEntity(op.entity)
		}
	}
	for _, op := range ecs.queue.ops {
		if op.typ != opDestroy {
			continue
		}
		ecs.DeleteEntity(op.entity)
		destroyed++
	}
	ecs.log.Debug("deferred operations flushed",
		zap.Int("total", len(ecs.queue.ops)),
		zap.Int("destroyed", destroyed))
	ecs.queue.ops = ecs.queue.ops[:0]
	clear(ecs.queue.pendingDestroy)
}
