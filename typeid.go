package stockpile

import (
	"fmt"
	"reflect"
	"sync"
)

// maxTypeIDs caps the number of distinct component types per process. IDs are
// never freed, so exhausting the space is a configuration error, not a
// recoverable runtime case.
const maxTypeIDs = 1 << 16

// typeIDs is the process-wide type registry. It is the only piece of shared
// state that may be touched from multiple goroutines; everything else in this
// package assumes external serialization.
var typeIDs = struct {
	mu     sync.Mutex
	next   uint32
	byType map[reflect.Type]TypeID
	names  []reflect.Type
}{
	byType: make(map[reflect.Type]TypeID),
}

// TypeOf returns the TypeID for T, assigning the next unused id on the first
// call for a given type. Assignment is monotonic and ids are never reused
// within a process run. Panics once the 16-bit id space is exhausted.
func TypeOf[T any]() TypeID {
	t := reflect.TypeOf((*T)(nil)).Elem()

	typeIDs.mu.Lock()
	defer typeIDs.mu.Unlock()

	if id, ok := typeIDs.byType[t]; ok {
		return id
	}
	if typeIDs.next >= maxTypeIDs {
		panic(fmt.Sprintf("stockpile: cannot assign id for component %s: %d distinct component types exceeded", t, maxTypeIDs))
	}
	id := TypeID(typeIDs.next)
	typeIDs.next++
	typeIDs.byType[t] = id
	typeIDs.names = append(typeIDs.names, t)
	return id
}

// typeLabel names T for error messages without requiring an assigned id.
func typeLabel[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// typeName names an already assigned id for error messages.
func typeName(id TypeID) string {
	typeIDs.mu.Lock()
	defer typeIDs.mu.Unlock()

	if int(id) < len(typeIDs.names) {
		return typeIDs.names[id].String()
	}
	return fmt.Sprintf("TypeID(%d)", id)
}
