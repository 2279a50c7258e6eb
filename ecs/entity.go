package ecs

import "fmt"

type entityID uint32
type generation uint32

// Entity is a handle to a world slot. A slot is reused after its entity is
// destroyed, with a bumped generation, so stale handles stop matching. The
// zero Entity never refers to anything.
type Entity struct {
	slot entityID
	gen  generation
}

func makeEntity(id entityID, gen generation) Entity {
	return Entity{slot: id, gen: gen}
}

func (e Entity) id() entityID {
	return e.slot
}

func (e Entity) generation() generation {
	return e.gen
}

// IsZero reports whether e is the zero handle.
func (e Entity) IsZero() bool {
	return e.slot == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.slot, e.gen)
}
