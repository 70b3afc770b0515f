// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInit is returned, if the buffer is too small for the requested capacity,
	// or if creation parameters are invalid.
	ErrInit = errors.New("stack initialization failed")
	// ErrNullReference is returned for a nil stack, or a bad (nil or too short) element buffer.
	ErrNullReference = errors.New("null reference")
	// ErrFull is returned by Push on a full stack.
	ErrFull = errors.New("stack is full")
	// ErrEmpty is returned by Pop and Peek on an empty stack.
	ErrEmpty = errors.New("stack is empty")
)

// Status classifies a stack or the result of an operation.
type Status int

const (
	StatusOK Status = iota
	StatusInitError
	StatusNullReference
	StatusFull
	StatusEmpty
)

var statusNames = [...]string{
	StatusOK:            "ok",
	StatusInitError:     "init error",
	StatusNullReference: "null reference",
	StatusFull:          "full",
	StatusEmpty:         "empty",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Err returns the error matching the status, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusInitError:
		return ErrInit
	case StatusNullReference:
		return ErrNullReference
	case StatusFull:
		return ErrFull
	case StatusEmpty:
		return ErrEmpty
	default:
		return errors.Errorf("unknown status %d", int(s))
	}
}

// StatusOf returns the status for an error returned by this package.
// Wrapped errors are unwrapped with errors.Cause.
// Errors of other origins are reported as StatusInitError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	switch errors.Cause(err) {
	case ErrNullReference:
		return StatusNullReference
	case ErrFull:
		return StatusFull
	case ErrEmpty:
		return StatusEmpty
	default:
		return StatusInitError
	}
}
