package stockpile

// entityRecord is the per-slot state the allocator keeps for an entity.
type entityRecord struct {
	active bool
	group  Group
}

// allocator tracks active entity slots and recycles freed ids. An id handed
// out by create is never handed out again while still active.
type allocator struct {
	records []entityRecord
	free    []EntityID // LIFO recycle stack
}

func (a *allocator) create(g Group) EntityID {
	if n := len(a.free); n > 0 {
		e := a.free[n-1]
		a.free = a.free[:n-1]
		a.records[e] = entityRecord{active: true, group: g}
		return e
	}
	e := EntityID(len(a.records))
	a.records = append(a.records, entityRecord{active: true, group: g})
	return e
}

func (a *allocator) isActive(e EntityID) bool {
	return int(e) < len(a.records) && a.records[e].active
}

// release deactivates e and returns its id to the recycle stack, reporting
// whether e was active. The group tag resets with the record.
func (a *allocator) release(e EntityID) bool {
	if !a.isActive(e) {
		return false
	}
	a.records[e] = entityRecord{}
	a.free = append(a.free, e)
	return true
}

// setGroup overwrites e's group tag. Callers validate liveness first.
func (a *allocator) setGroup(e EntityID, g Group) {
	a.records[e].group = g
}

// inGroup derives the member list from the records themselves, so it can
// never drift from the last assigned tags. Ascending by id.
func (a *allocator) inGroup(g Group) []EntityID {
	var out []EntityID
	for i := range a.records {
		if a.records[i].active && a.records[i].group == g {
			out = append(out, EntityID(i))
		}
	}
	return out
}
