package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("entity not alive")
	ErrNilComponent         = errors.New("component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ID numbers a component type for the life of the process. Zero is never
// assigned.
type ID uint32

var lastID atomic.Uint32

// Kind is a component type without its Go type, so queries can mix kinds.
type Kind interface {
	ID() ID
	String() string
}

// Handle is the typed key for one component type. Declare each handle once,
// at package level, next to the type it stores.
type Handle[T any] struct {
	id   ID
	name string
}

func NewComponent[T any]() Handle[T] {
	var zero T
	return Handle[T]{id: ID(lastID.Add(1)), name: fmt.Sprintf("%T", zero)}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) String() string {
	return h.name
}

// Kind returns h as an untyped Kind.
func (h Handle[T]) Kind() Kind {
	return h
}
