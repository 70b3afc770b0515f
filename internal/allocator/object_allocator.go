// Copyright 2015 Aleksandr Demakin. All rights reserved.

package allocator

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

const maxObjectSize = 128 * 1024 * 1024

// ObjectSize returns the size of the object.
// If an object is a slice, it returns the size of the entire slice
// If an object is a pointer, it dereferences the pointer and
// returns the size of the underlying object.
func ObjectSize(object reflect.Value) int {
	var size int
	if object.Kind() == reflect.Slice {
		size = object.Len() * int(object.Type().Elem().Size())
	} else if object.Kind() == reflect.Ptr {
		size = int(object.Type().Elem().Size())
	} else {
		size = int(object.Type().Size())
	}
	return size
}

// ObjectData returns objects underlying byte representation.
// The object must stored continuously in the memory, ie must not contain any references.
// Slices of plain objects are allowed.
// For pointers and slices the returned bytes share memory with the object,
// so writing to them modifies the object. Other values are copied first.
func ObjectData(object interface{}) ([]byte, error) {
	value := reflect.ValueOf(object)
	if !value.IsValid() {
		return nil, errors.New("invalid object")
	}
	if err := checkType(value.Type(), 0); err != nil {
		return nil, err
	}
	size := ObjectSize(value)
	if size > maxObjectSize {
		return nil, errors.Errorf("the object exceeds max object size of %d", maxObjectSize)
	}
	var addr unsafe.Pointer
	switch value.Kind() {
	case reflect.Ptr, reflect.Slice:
		if value.IsNil() {
			return nil, errors.New("nil object")
		}
		addr = value.UnsafePointer()
	default:
		copied := reflect.New(value.Type())
		copied.Elem().Set(value)
		addr = copied.UnsafePointer()
	}
	if size == 0 {
		return []byte{}, nil
	}
	return unsafe.Slice((*byte)(addr), size), nil
}

// IsReferenceType returns true, is the object is a pointer or a slice
func IsReferenceType(object interface{}) bool {
	value := reflect.ValueOf(object)
	kind := value.Kind()
	return kind == reflect.Slice || kind == reflect.Ptr
}

// CheckObjectReferences checks if an object of type can be safely copied byte by byte.
// the object must not contain any reference types like
// maps, strings, and so on.
// slices or pointers can be at the top level only
func CheckObjectReferences(object interface{}) error {
	value := reflect.ValueOf(object)
	if !value.IsValid() {
		return errors.New("invalid object")
	}
	return checkType(value.Type(), 0)
}

func checkType(t reflect.Type, depth int) error {
	kind := t.Kind()
	if kind == reflect.Array {
		return checkType(t.Elem(), depth+1)
	}
	if kind == reflect.Slice {
		if depth != 0 {
			return errors.New("unexpected slice type")
		}
		return checkType(t.Elem(), depth+1)
	}
	if kind == reflect.Ptr {
		if depth != 0 {
			return errors.New("unexpected pointer type")
		}
		return checkType(t.Elem(), depth+1)
	}
	if kind == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if err := checkType(field.Type, depth+1); err != nil {
				return errors.Wrapf(err, "field %s", field.Name)
			}
		}
		return nil
	}
	return checkNumericType(kind)
}

func checkNumericType(kind reflect.Kind) error {
	if kind >= reflect.Bool && kind <= reflect.Complex128 {
		return nil
	}
	return errors.Errorf("unsupported type %q", kind.String())
}
