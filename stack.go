// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"github.com/pkg/errors"
)

// Stack is a stack of fixed-size opaque elements placed in a caller-owned byte slice.
// Elements are copied in and out byte by byte, the stack never keeps references
// to the slices passed to its methods.
// The buffer must outlive the stack, and must not be modified by the caller while
// the stack is in use.
// All methods can be called on a nil *Stack, returning ErrNullReference.
type Stack struct {
	data     []byte
	elemSize int
	capacity int
	count    int
	grow     grower
	debug    bool
}

// New creates a stack over buf, which can hold up to capacity elements of elemSize bytes.
//	buf - storage for the elements. Only first elemSize*capacity bytes are used.
//	flag - a combination of FlagGrowUpward and FlagDebug, or 0.
// If buf is too small, ErrInit is returned. If buf is nil, ErrNullReference is returned.
func New(buf []byte, elemSize, capacity int, flag int) (*Stack, error) {
	if elemSize <= 0 || capacity < 0 {
		return nil, errors.Wrapf(ErrInit, "invalid element size %d or capacity %d", elemSize, capacity)
	}
	if flag&^flagsMask != 0 {
		return nil, errors.Wrapf(ErrInit, "unknown flags %#x", flag&^flagsMask)
	}
	// the division keeps elemSize*capacity from overflowing.
	if capacity > len(buf)/elemSize {
		return nil, errors.Wrapf(ErrInit, "buffer of %d bytes cannot hold %d elements of %d bytes", len(buf), capacity, elemSize)
	}
	if buf == nil {
		return nil, errors.Wrap(ErrNullReference, "nil buffer")
	}
	used := elemSize * capacity
	s := &Stack{
		data:     buf[:used:used],
		elemSize: elemSize,
		capacity: capacity,
		grow:     growerFromFlag(flag),
		debug:    flag&FlagDebug != 0,
	}
	s.count = s.grow.reset(capacity)
	if s.debug {
		zero(buf)
	}
	return s, nil
}

// Push copies the first ElemSize() bytes of elem on top of the stack.
func (s *Stack) Push(elem []byte) error {
	if err := s.checkElem(elem); err != nil {
		return err
	}
	if s.grow.full(s.count, s.capacity) {
		return ErrFull
	}
	copy(s.slot(s.grow.push(&s.count)), elem)
	return nil
}

// Pop removes the top element, copying it into out.
// If the stack is empty, out is not modified.
func (s *Stack) Pop(out []byte) error {
	if err := s.checkElem(out); err != nil {
		return err
	}
	if s.grow.empty(s.count, s.capacity) {
		return ErrEmpty
	}
	slot := s.slot(s.grow.pop(&s.count))
	copy(out, slot)
	if s.debug {
		zero(slot)
	}
	return nil
}

// Peek copies the top element into out without removing it.
func (s *Stack) Peek(out []byte) error {
	if err := s.checkElem(out); err != nil {
		return err
	}
	if s.grow.empty(s.count, s.capacity) {
		return ErrEmpty
	}
	copy(out, s.slot(s.grow.top(s.count)))
	return nil
}

// IsEmpty returns true, if the stack has no elements. It returns false for a nil stack.
func (s *Stack) IsEmpty() bool {
	if s == nil {
		return false
	}
	return s.grow.empty(s.count, s.capacity)
}

// IsFull returns true, if the stack is at its capacity. It returns false for a nil stack.
func (s *Stack) IsFull() bool {
	if s == nil {
		return false
	}
	return s.grow.full(s.count, s.capacity)
}

// Status returns StatusNullReference for a nil stack, StatusEmpty, StatusFull, or StatusOK.
// For a stack with zero capacity StatusEmpty is returned.
func (s *Stack) Status() Status {
	if s == nil {
		return StatusNullReference
	}
	return classify(s.grow, s.count, s.capacity)
}

// Len returns the number of elements in the stack along with its status.
// Empty and full stacks are not errors here: the length is valid
// for every status except StatusNullReference.
func (s *Stack) Len() (int, Status) {
	if s == nil {
		return 0, StatusNullReference
	}
	return s.grow.length(s.count, s.capacity), s.Status()
}

// Cap returns the maximum number of elements.
func (s *Stack) Cap() int {
	if s == nil {
		return 0
	}
	return s.capacity
}

// ElemSize returns the size of one element in bytes.
func (s *Stack) ElemSize() int {
	if s == nil {
		return 0
	}
	return s.elemSize
}

func (s *Stack) checkElem(elem []byte) error {
	if s == nil {
		return errors.Wrap(ErrNullReference, "nil stack")
	}
	if elem == nil {
		return errors.Wrap(ErrNullReference, "nil element")
	}
	if len(elem) < s.elemSize {
		return errors.Wrapf(ErrNullReference, "element buffer of %d bytes is shorter than %d", len(elem), s.elemSize)
	}
	return nil
}

func (s *Stack) slot(idx int) []byte {
	off := idx * s.elemSize
	end := off + s.elemSize
	return s.data[off:end:end]
}

func zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
