// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"github.com/pkg/errors"
)

// Typed is a stack of values of type T placed in a caller-owned slice.
// Its capacity is the length of the slice.
type Typed[T any] struct {
	data  []T
	count int
	grow  grower
	debug bool
}

// NewTyped creates a stack over storage.
//	flag - a combination of FlagGrowUpward and FlagDebug, or 0.
func NewTyped[T any](storage []T, flag int) (*Typed[T], error) {
	if flag&^flagsMask != 0 {
		return nil, errors.Wrapf(ErrInit, "unknown flags %#x", flag&^flagsMask)
	}
	if storage == nil {
		return nil, errors.Wrap(ErrNullReference, "nil storage")
	}
	s := &Typed[T]{
		data:  storage[:len(storage):len(storage)],
		grow:  growerFromFlag(flag),
		debug: flag&FlagDebug != 0,
	}
	s.count = s.grow.reset(len(storage))
	if s.debug {
		var empty T
		for i := range storage {
			storage[i] = empty
		}
	}
	return s, nil
}

// Push puts v on top of the stack.
func (s *Typed[T]) Push(v T) error {
	if s == nil {
		return errors.Wrap(ErrNullReference, "nil stack")
	}
	if s.grow.full(s.count, len(s.data)) {
		return ErrFull
	}
	s.data[s.grow.push(&s.count)] = v
	return nil
}

// Pop removes and returns the top element.
func (s *Typed[T]) Pop() (T, error) {
	var result T
	if s == nil {
		return result, errors.Wrap(ErrNullReference, "nil stack")
	}
	if s.grow.empty(s.count, len(s.data)) {
		return result, ErrEmpty
	}
	idx := s.grow.pop(&s.count)
	result = s.data[idx]
	if s.debug {
		var empty T
		s.data[idx] = empty
	}
	return result, nil
}

// Peek returns the top element without removing it.
func (s *Typed[T]) Peek() (T, error) {
	var result T
	if s == nil {
		return result, errors.Wrap(ErrNullReference, "nil stack")
	}
	if s.grow.empty(s.count, len(s.data)) {
		return result, ErrEmpty
	}
	return s.data[s.grow.top(s.count)], nil
}

// IsEmpty returns true, if the stack has no elements. It returns false for a nil stack.
func (s *Typed[T]) IsEmpty() bool {
	if s == nil {
		return false
	}
	return s.grow.empty(s.count, len(s.data))
}

// IsFull returns true, if the stack is at its capacity. It returns false for a nil stack.
func (s *Typed[T]) IsFull() bool {
	if s == nil {
		return false
	}
	return s.grow.full(s.count, len(s.data))
}

// Status has the same meaning, as Stack.Status.
func (s *Typed[T]) Status() Status {
	if s == nil {
		return StatusNullReference
	}
	return classify(s.grow, s.count, len(s.data))
}

// Len has the same meaning, as Stack.Len.
func (s *Typed[T]) Len() (int, Status) {
	if s == nil {
		return 0, StatusNullReference
	}
	return s.grow.length(s.count, len(s.data)), s.Status()
}

// Cap returns the maximum number of elements.
func (s *Typed[T]) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}
