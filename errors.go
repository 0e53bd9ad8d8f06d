package stockpile

import "fmt"

type UnregisteredComponentError struct {
	Type string
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("component '%s' isn't registered", e.Type)
}

type AlreadyAttachedError struct {
	Entity EntityID
	Type   string
}

func (e AlreadyAttachedError) Error() string {
	return fmt.Sprintf("entity %d already has component '%s' attached", e.Entity, e.Type)
}

type NotAttachedError struct {
	Entity EntityID
	Type   string
}

func (e NotAttachedError) Error() string {
	return fmt.Sprintf("entity %d doesn't have component '%s' attached", e.Entity, e.Type)
}

type InvalidEntityError struct {
	Entity EntityID
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity id %d is invalid or doesn't exist", e.Entity)
}

type InvalidSystemError struct {
	System SystemID
}

func (e InvalidSystemError) Error() string {
	return fmt.Sprintf("system id %d is not registered", e.System)
}
