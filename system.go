package stockpile

import "go.uber.org/zap"

// systemData is the scheduler's bookkeeping for one registered system.
type systemData struct {
	enabled  bool
	sys      System
	tickRate int
	skipped  int
}

// AddSystem registers sys to run every tickRate scheduler passes; a rate of 1
// or less runs it every pass. Systems run in registration order and start
// enabled.
func (ecs *ECS) AddSystem(sys System, tickRate int) SystemID {
	id := SystemID(len(ecs.systems))
	ecs.systems = append(ecs.systems, systemData{
		enabled:  true,
		sys:      sys,
		tickRate: tickRate,
	})
	ecs.log.Debug("system added",
		zap.Uint16("system_id", uint16(id)),
		zap.Int("tick_rate", tickRate))
	return id
}

// EnableSystem resumes scheduling of the system.
func (ecs *ECS) EnableSystem(id SystemID) error {
	return ecs.setSystemEnabled(id, true)
}

// DisableSystem stops the system from being scheduled. Its skipped-tick count
// is left as is, so re-enabling resumes the original cadence.
func (ecs *ECS) DisableSystem(id SystemID) error {
	return ecs.setSystemEnabled(id, false)
}

// SystemEnabled reports whether the system is currently scheduled.
func (ecs *ECS) SystemEnabled(id SystemID) (bool, error) {
	if int(id) >= len(ecs.systems) {
		return false, InvalidSystemError{System: id}
	}
	return ecs.systems[id].enabled, nil
}

func (ecs *ECS) setSystemEnabled(id SystemID, enabled bool) error {
	if int(id) >= len(ecs.systems) {
		return InvalidSystemError{System: id}
	}
	if ecs.systems[id].enabled != enabled {
		ecs.systems[id].enabled = enabled
		ecs.log.Debug("system toggled",
			zap.Uint16("system_id", uint16(id)),
			zap.Bool("enabled", enabled))
	}
	return nil
}

// Update runs one scheduler pass: every enabled system whose tick interval has
// elapsed is invoked exactly once, in registration order, receiving elapsed
// (milliseconds since the previous pass) untouched. Operations enqueued by
// systems during the pass are flushed once the pass completes.
func (ecs *ECS) Update(elapsed uint32) {
	ecs.updating = true
	for i := range ecs.systems {
		sd := &ecs.systems[i]
		if !sd.enabled {
			continue
		}
		if sd.tickRate > 1 && sd.skipped+1 < sd.tickRate {
			sd.skipped++
			continue
		}
		sd.skipped = 0
		sd.sys.Update(ecs, SystemID(i), elapsed)
	}
	ecs.updating = false
	ecs.flushQueue()
}
