// Package csync provides small concurrency-safe containers.
package csync

import (
	"reflect"
	"sync"
)

// Value is a concurrency-safe holder for a single value. Reference types are
// rejected because the lock could not protect what they point to.
type Value[T any] struct {
	v  T
	mu sync.RWMutex
}

// NewValue creates a new Value with the given initial value. It panics if T
// is a pointer, slice or map.
func NewValue[T any](t T) *Value[T] {
	switch reflect.ValueOf(t).Kind() {
	case reflect.Pointer:
		panic("csync.Value does not support pointer types")
	case reflect.Slice:
		panic("csync.Value does not support slice types")
	case reflect.Map:
		panic("csync.Value does not support map types")
	}
	return &Value[T]{v: t}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.v
}

// Set replaces the current value.
func (v *Value[T]) Set(t T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.v = t
}

// Update applies fn to the current value under the write lock and stores the
// result.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.v = fn(v.v)
	return v.v
}
