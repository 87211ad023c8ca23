package reflective

import "reflect"

type handle int

// arena assigns a stable integer handle to each distinct object (the target of a pointer, or
// the storage of a map or slice) that the comparison reaches, so that the visited set can be keyed by pairs of small integers.
type arena struct {
	handles map[uintptr]handle
}

func newArena() *arena {
	return &arena{handles: make(map[uintptr]handle)}
}

// handleOf returns the handle for the object that a pointer, map or slice value refers to.
func (a *arena) handleOf(ptr reflect.Value) handle {
	addr := ptr.Pointer()
	if h, ok := a.handles[addr]; ok {
		return h
	}
	h := handle(len(a.handles) + 1)
	a.handles[addr] = h
	return h
}
