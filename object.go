// Copyright 2015 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"runtime"

	"github.com/nxgtw/go-gstack/internal/allocator"
	"github.com/pkg/errors"
)

// ElemSizeOf returns the size of an element needed to store obj in a Stack.
// obj must not contain any references, such as pointers, strings, or maps.
// If obj is a pointer, the size of the pointee is returned.
func ElemSizeOf(obj interface{}) (int, error) {
	if err := allocator.CheckObjectReferences(obj); err != nil {
		return 0, errors.Wrap(err, "invalid object")
	}
	data, err := allocator.ObjectData(obj)
	if err != nil {
		return 0, errors.Wrap(err, "invalid object")
	}
	return len(data), nil
}

// PushObject pushes the byte representation of obj onto s.
// The size of obj must be equal to s.ElemSize().
func PushObject(s *Stack, obj interface{}) error {
	data, err := objectData(s, obj)
	if err != nil {
		return err
	}
	err = s.Push(data)
	runtime.KeepAlive(obj)
	return err
}

// PopObject pops the top element of s into the value ptr points to.
func PopObject(s *Stack, ptr interface{}) error {
	if !allocator.IsReferenceType(ptr) {
		return errors.Wrap(ErrNullReference, "a pointer is expected")
	}
	data, err := objectData(s, ptr)
	if err != nil {
		return err
	}
	err = s.Pop(data)
	runtime.KeepAlive(ptr)
	return err
}

// PeekObject copies the top element of s into the value ptr points to.
func PeekObject(s *Stack, ptr interface{}) error {
	if !allocator.IsReferenceType(ptr) {
		return errors.Wrap(ErrNullReference, "a pointer is expected")
	}
	data, err := objectData(s, ptr)
	if err != nil {
		return err
	}
	err = s.Peek(data)
	runtime.KeepAlive(ptr)
	return err
}

func objectData(s *Stack, obj interface{}) ([]byte, error) {
	if s == nil {
		return nil, errors.Wrap(ErrNullReference, "nil stack")
	}
	data, err := allocator.ObjectData(obj)
	if err != nil {
		return nil, errors.Wrap(ErrNullReference, err.Error())
	}
	if len(data) != s.ElemSize() {
		return nil, errors.Wrapf(ErrNullReference, "object size %d does not match element size %d", len(data), s.ElemSize())
	}
	return data, nil
}
