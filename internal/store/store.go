// Package store implements the observable state stores for meal plans,
// marked recipes, and planning preferences. Each store keeps an in-memory
// mirror as the single source of truth for subscribers; persistent stores
// additionally write every mutation through to a storage slot.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"prepper/internal/storage"
)

// Observable holds a value and a list of subscribers notified on every
// mutation in registration order.
type Observable[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// NewObservable creates an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current mirror.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Subscribe registers fn, immediately delivers the current value to it, and
// returns an unsubscribe handle.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscription[T]{id: id, fn: fn})
	v := o.value
	o.mu.Unlock()

	fn(v)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

// Set replaces the mirror and notifies all subscribers.
func (o *Observable[T]) Set(v T) {
	o.mutate(func(T) T { return v }, nil)
}

// Update applies fn to the current mirror and treats the result as Set.
func (o *Observable[T]) Update(fn func(T) T) {
	o.mutate(fn, nil)
}

// mutate swaps the value under the lock, runs the optional after hook while
// still holding it, then notifies subscribers outside the lock so a callback
// can re-enter the store.
func (o *Observable[T]) mutate(fn func(T) T, after func(T)) {
	o.mu.Lock()
	v := fn(o.value)
	o.value = v
	if after != nil {
		after(v)
	}
	fns := make([]func(T), len(o.subs))
	for i, s := range o.subs {
		fns[i] = s.fn
	}
	o.mu.Unlock()

	for _, notify := range fns {
		notify(v)
	}
}

// Persistent is an Observable backed by one storage slot. Every mutation is
// written through synchronously before subscribers are notified. Storage
// failures are logged and otherwise ignored; the mirror stays authoritative.
type Persistent[T any] struct {
	*Observable[T]
	key     string
	backend storage.Storage
}

// NewPersistent creates a store over the slot named key. A stored value that
// loads and decodes cleanly seeds the mirror; anything else (absent key,
// storage failure, corrupt JSON) degrades to defaultValue.
func NewPersistent[T any](backend storage.Storage, key string, defaultValue T) *Persistent[T] {
	v := defaultValue
	data, err := backend.Get(key)
	switch {
	case err != nil:
		log.Printf("failed to load %q, using default: %v", key, err)
	case data != nil:
		var loaded T
		if err := json.Unmarshal(data, &loaded); err != nil {
			log.Printf("ignoring corrupt value for %q: %v", key, err)
		} else {
			v = loaded
		}
	}

	return &Persistent[T]{
		Observable: NewObservable(v),
		key:        key,
		backend:    backend,
	}
}

// Set replaces the mirror, persists it, and notifies subscribers.
func (p *Persistent[T]) Set(v T) {
	p.Observable.mutate(func(T) T { return v }, p.persist)
}

// Update applies fn to the current mirror and treats the result as Set.
func (p *Persistent[T]) Update(fn func(T) T) {
	p.Observable.mutate(fn, p.persist)
}

// Clear resets the mirror to the type's zero value, removes the storage key,
// and notifies subscribers.
func (p *Persistent[T]) Clear() {
	var zero T
	p.Observable.mutate(func(T) T { return zero }, func(T) {
		if err := p.backend.Delete(p.key); err != nil {
			log.Printf("failed to clear %q: %v", p.key, err)
		}
	})
}

func (p *Persistent[T]) persist(v T) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("failed to encode %q: %v", p.key, err)
		return
	}
	if err := p.backend.Set(p.key, data); err != nil {
		log.Printf("failed to persist %q: %v", p.key, err)
	}
}
