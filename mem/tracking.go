package mem

import (
	"fmt"
	"reflect"

	"github.com/pengdafu/adt/diag"
)

// Tracking wraps another allocator and keeps counters. A payload released
// twice is reported and not forwarded the second time; only payloads of
// comparable types can be recognised.
type Tracking struct {
	inner    Allocator
	live     uintptr
	reserves int
	releases int
	doubles  int
	released map[any]struct{}
}

func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = NewHeap()
	}
	return &Tracking{inner: inner, released: make(map[any]struct{})}
}

func (t *Tracking) Reserve(size uintptr) bool {
	if !t.inner.Reserve(size) {
		return false
	}
	t.live += size
	t.reserves++
	return true
}

func (t *Tracking) Unreserve(size uintptr) {
	t.inner.Unreserve(size)
	if size > t.live {
		t.live = 0
		return
	}
	t.live -= size
}

func (t *Tracking) Release(payload any) {
	if payload != nil && reflect.TypeOf(payload).Comparable() {
		if _, ok := t.released[payload]; ok {
			t.doubles++
			diag.Logger().WithField("payload", fmt.Sprintf("%v", payload)).Warn("payload released twice")
			return
		}
		t.released[payload] = struct{}{}
	}
	t.releases++
	t.inner.Release(payload)
}

// Live is the number of node bytes currently reserved.
func (t *Tracking) Live() uintptr {
	return t.live
}

func (t *Tracking) Reserves() int {
	return t.reserves
}

func (t *Tracking) Releases() int {
	return t.releases
}

func (t *Tracking) DoubleReleases() int {
	return t.doubles
}

// Released reports whether payload has been handed to Release.
func (t *Tracking) Released(payload any) bool {
	if payload == nil || !reflect.TypeOf(payload).Comparable() {
		return false
	}
	_, ok := t.released[payload]
	return ok
}
