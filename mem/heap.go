package mem

// Heap leaves node storage to the Go runtime and never refuses a reservation.
type Heap struct{}

func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Reserve(size uintptr) bool {
	return true
}

func (h *Heap) Unreserve(size uintptr) {}

// Release calls Release or Close on the payload when it has one.
func (h *Heap) Release(payload any) {
	dispose(payload)
}
