package stockpile

import (
	"slices"
	"testing"
)

// TestAllocatorRecycling verifies that freed ids come back and that live ids
// never alias.
func TestAllocatorRecycling(t *testing.T) {
	var a allocator

	e0 := a.create(GroupNone)
	e1 := a.create(GroupNone)
	if e0 == e1 {
		t.Fatalf("two live entities share id %d", e0)
	}

	if !a.release(e0) {
		t.Fatalf("release of active entity reported false")
	}
	if a.isActive(e0) {
		t.Fatalf("isActive after release: true, want false")
	}

	// The freed id is recycled before any new id is minted
	e2 := a.create(GroupNone)
	if e2 != e0 {
		t.Errorf("recycled id: %d, want %d", e2, e0)
	}

	// With the free list empty, ids keep growing densely
	e3 := a.create(GroupNone)
	if e3 != 2 {
		t.Errorf("next fresh id: %d, want 2", e3)
	}
}

// TestAllocatorReleaseTolerance covers the silent no-op contract for inactive
// and out-of-range ids.
func TestAllocatorReleaseTolerance(t *testing.T) {
	var a allocator
	e := a.create(GroupNone)

	if a.release(9999) {
		t.Errorf("release of out-of-range id reported true")
	}
	a.release(e)
	if a.release(e) {
		t.Errorf("double release reported true")
	}
}

// TestAllocatorGroups covers tagging, overwriting, and membership listing.
func TestAllocatorGroups(t *testing.T) {
	var a allocator

	e0 := a.create("npc")
	e1 := a.create("npc")
	e2 := a.create(GroupNone)

	if got := a.inGroup("npc"); !slices.Equal(got, []EntityID{e0, e1}) {
		t.Fatalf("inGroup(npc) = %v, want [%d %d]", got, e0, e1)
	}

	// Overwriting moves the entity between groups
	a.setGroup(e1, "boss")
	if got := a.inGroup("npc"); !slices.Equal(got, []EntityID{e0}) {
		t.Errorf("inGroup(npc) after move = %v, want [%d]", got, e0)
	}
	if got := a.inGroup("boss"); !slices.Equal(got, []EntityID{e1}) {
		t.Errorf("inGroup(boss) = %v, want [%d]", got, e1)
	}

	// Deletion removes membership; the untagged entity was never a member
	a.release(e0)
	if got := a.inGroup("npc"); len(got) != 0 {
		t.Errorf("inGroup(npc) after release = %v, want empty", got)
	}
	if got := a.inGroup(GroupNone); !slices.Equal(got, []EntityID{e2}) {
		t.Errorf("inGroup(none) = %v, want [%d]", got, e2)
	}
}
