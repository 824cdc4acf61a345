package mem

// Arena is a bounded strategy: reservations fail once budget bytes of node
// storage are in use.
type Arena struct {
	budget uint64
	used   uint64
}

func NewArena(budget uint64) *Arena {
	return &Arena{budget: budget}
}

func (a *Arena) Reserve(size uintptr) bool {
	if a.used+uint64(size) > a.budget {
		return false
	}
	a.used += uint64(size)
	return true
}

func (a *Arena) Unreserve(size uintptr) {
	if uint64(size) > a.used {
		a.used = 0
		return
	}
	a.used -= uint64(size)
}

func (a *Arena) Release(payload any) {
	dispose(payload)
}

func (a *Arena) Used() uint64 {
	return a.used
}

func (a *Arena) Budget() uint64 {
	return a.budget
}
