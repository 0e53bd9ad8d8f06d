package stockpile

// poolTable is the type-erased pool collection. Pools are stored behind the
// RawPool capability interface in a slice indexed directly by TypeID, keeping
// lookup O(1); typed access is recovered by PoolOf.
type poolTable struct {
	pools []RawPool // nil entry means unregistered
}

func (pt *poolTable) exists(id TypeID) bool {
	return int(id) < len(pt.pools) && pt.pools[id] != nil
}

// register stores p under id. Registering an already occupied id reports
// false and leaves the existing pool untouched.
func (pt *poolTable) register(id TypeID, p RawPool) bool {
	if pt.exists(id) {
		return false
	}
	if int(id) >= len(pt.pools) {
		grown := make([]RawPool, int(id)+1)
		copy(grown, pt.pools)
		pt.pools = grown
	}
	pt.pools[id] = p
	return true
}

func (pt *poolTable) get(id TypeID) RawPool {
	if !pt.exists(id) {
		return nil
	}
	return pt.pools[id]
}

// disableEntity broadcasts to every registered pool, regardless of type, so
// deleting an entity purges all its components in one sweep.
func (pt *poolTable) disableEntity(e EntityID) {
	for _, p := range pt.pools {
		if p != nil {
			p.DisableEntity(e)
		}
	}
}
