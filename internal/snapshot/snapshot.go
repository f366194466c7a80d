// Package snapshot publie des collections immuables remplacées d'un bloc.
package snapshot

import (
	"sync/atomic"
	"time"
)

type version[T any] struct {
	items     []T
	fetchedAt time.Time
}

// Store garde le dernier snapshot publié. Les lecteurs voient l'ancien ou le
// nouveau slice, jamais un mélange. Les slices retournés ne doivent pas être modifiés.
type Store[T any] struct {
	current atomic.Pointer[version[T]]
}

// Publish remplace le snapshot courant par une copie de items
func (s *Store[T]) Publish(items []T, fetchedAt time.Time) {
	cp := make([]T, len(items))
	copy(cp, items)
	s.current.Store(&version[T]{items: cp, fetchedAt: fetchedAt})
}

// Load retourne le snapshot courant et false si rien n'a encore été publié
func (s *Store[T]) Load() ([]T, time.Time, bool) {
	v := s.current.Load()
	if v == nil {
		return nil, time.Time{}, false
	}
	return v.items, v.fetchedAt, true
}
