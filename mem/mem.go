// Package mem is the allocation strategy every container draws node storage
// from and hands released payloads to.
package mem

import (
	"io"
	"reflect"
	"sync"

	"github.com/pengdafu/adt/diag"
)

// Allocator is the memory strategy of a container. Node records are accounted
// with Reserve/Unreserve; payloads the caller asked the container to release
// are passed to Release exactly once.
type Allocator interface {
	// Reserve returns false when the strategy cannot supply size bytes.
	Reserve(size uintptr) bool
	Unreserve(size uintptr)
	Release(payload any)
}

// Releaser is implemented by payloads that know how to dispose of themselves.
type Releaser interface {
	Release()
}

var (
	mu  sync.Mutex
	def Allocator
)

// Start installs the process-wide default allocator. It must be called before
// creating containers that are not given one through WithAllocator.
func Start(a Allocator) error {
	if a == nil {
		return diag.InvalidArgf("failed to initialize library: allocator cannot be nil")
	}
	mu.Lock()
	def = a
	mu.Unlock()
	return nil
}

// Stop uninstalls the default allocator.
func Stop() {
	mu.Lock()
	def = nil
	mu.Unlock()
}

// Default returns the allocator installed by Start, or nil.
func Default() Allocator {
	mu.Lock()
	defer mu.Unlock()
	return def
}

type Options struct {
	Allocator Allocator
}

type Option func(*Options)

// WithAllocator overrides the process-wide default for one container.
func WithAllocator(a Allocator) Option {
	return func(o *Options) {
		o.Allocator = a
	}
}

// Resolve picks the allocator a container is created with.
func Resolve(opts ...Option) (Allocator, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Allocator != nil {
		return o.Allocator, nil
	}
	if a := Default(); a != nil {
		return a, nil
	}
	return nil, diag.InvalidArgf("allocator not configured: call mem.Start or pass mem.WithAllocator")
}

// IsNil reports whether v is a null payload: a nil interface, pointer, map,
// slice, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func dispose(payload any) {
	switch p := payload.(type) {
	case Releaser:
		p.Release()
	case io.Closer:
		if err := p.Close(); err != nil {
			diag.Logger().WithError(err).Warn("closing released payload")
		}
	}
}
