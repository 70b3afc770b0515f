// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var directions = []struct {
	name string
	flag int
}{
	{"downward", 0},
	{"upward", FlagGrowUpward},
}

func forEachDirection(t *testing.T, f func(t *testing.T, flag int)) {
	for _, d := range directions {
		d := d
		t.Run(d.name, func(t *testing.T) {
			f(t, d.flag)
			f(t, d.flag|FlagDebug)
		})
	}
}

func TestStackScenario(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		container := make([]byte, 5)
		s, err := New(container, 1, 5, flag)
		require.NoError(t, err)

		element := []byte{10}
		a.NoError(s.Push(element))
		element[0] = 0
		a.NoError(s.Peek(element))
		a.Equal(byte(10), element[0])
		l, status := s.Len()
		a.Equal(1, l)
		a.Equal(StatusOK, status)
		a.False(s.IsFull())

		element[0] = 0
		a.NoError(s.Pop(element))
		a.Equal(byte(10), element[0])
		a.True(s.IsEmpty())
		l, status = s.Len()
		a.Equal(0, l)
		a.Equal(StatusEmpty, status)
	})
}

func TestStackLIFO(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New(make([]byte, 6), 2, 3, flag)
		require.NoError(t, err)
		for i := 1; i <= 3; i++ {
			a.NoError(s.Push([]byte{byte(i), byte(i * 10)}))
		}
		out := make([]byte, 2)
		for i := 3; i >= 1; i-- {
			a.NoError(s.Pop(out))
			a.Equal([]byte{byte(i), byte(i * 10)}, out)
		}
	})
}

func TestStackFullAfterFill(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New(make([]byte, 16), 4, 4, flag)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			a.False(s.IsFull())
			a.NoError(s.Push([]byte{byte(i), 0, 0, 0}))
		}
		a.True(s.IsFull())
		a.Equal(StatusFull, s.Status())
		err = s.Push([]byte{0xFF, 0xFF, 0xFF, 0xFF})
		a.Equal(ErrFull, err)
		a.Equal(StatusFull, StatusOf(err))
		l, status := s.Len()
		a.Equal(4, l)
		a.Equal(StatusFull, status)
		top := make([]byte, 4)
		a.NoError(s.Peek(top))
		a.Equal([]byte{3, 0, 0, 0}, top)
	})
}

func TestStackEmptyAfterDrain(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New(make([]byte, 3), 1, 3, flag)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, s.Push([]byte{byte(i + 1)}))
		}
		out := []byte{0}
		for i := 0; i < 3; i++ {
			a.NoError(s.Pop(out))
		}
		a.True(s.IsEmpty())
		out[0] = 42
		err = s.Pop(out)
		a.Equal(ErrEmpty, err)
		a.Equal(byte(42), out[0])
		a.Equal(ErrEmpty, s.Peek(out))
		a.Equal(byte(42), out[0])
		a.Equal(StatusEmpty, s.Status())
	})
}

func TestStackPushPopInverse(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New(make([]byte, 8), 2, 4, flag)
		require.NoError(t, err)
		require.NoError(t, s.Push([]byte{1, 1}))
		require.NoError(t, s.Push([]byte{2, 2}))
		lenBefore, statusBefore := s.Len()
		a.NoError(s.Push([]byte{7, 9}))
		out := make([]byte, 2)
		a.NoError(s.Pop(out))
		a.Equal([]byte{7, 9}, out)
		lenAfter, statusAfter := s.Len()
		a.Equal(lenBefore, lenAfter)
		a.Equal(statusBefore, statusAfter)
		a.Equal(s.IsEmpty(), false)
		a.Equal(s.IsFull(), false)
	})
}

func TestStackPeekIdempotent(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New(make([]byte, 4), 1, 4, flag)
		require.NoError(t, err)
		require.NoError(t, s.Push([]byte{5}))
		require.NoError(t, s.Push([]byte{6}))
		out := []byte{0}
		for i := 0; i < 5; i++ {
			a.NoError(s.Peek(out))
			a.Equal(byte(6), out[0])
			l, _ := s.Len()
			a.Equal(2, l)
		}
	})
}

func TestStackCapacityInvariant(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		s, err := New(make([]byte, 3), 1, 3, flag)
		require.NoError(t, err)
		ops := "pppppoooooppopoooppppp"
		buf := []byte{0}
		for i, op := range ops {
			if op == 'p' {
				buf[0] = byte(i)
				_ = s.Push(buf)
			} else {
				_ = s.Pop(buf)
			}
			l, _ := s.Len()
			assert.True(t, l >= 0 && l <= s.Cap(), "length %d out of bounds after op %d", l, i)
		}
	})
}

func TestStackInitRejection(t *testing.T) {
	a := assert.New(t)
	s, err := New(make([]byte, 9), 2, 5, 0)
	a.Nil(s)
	a.Equal(ErrInit, errors.Cause(err))
	a.Equal(StatusInitError, StatusOf(err))

	// a failed stack is not usable.
	a.Equal(ErrNullReference, errors.Cause(s.Push([]byte{1, 2})))
	a.False(s.IsEmpty())
	a.False(s.IsFull())
	a.Equal(StatusNullReference, s.Status())

	_, err = New(make([]byte, 10), 0, 5, 0)
	a.Equal(ErrInit, errors.Cause(err))
	_, err = New(make([]byte, 10), 1, -1, 0)
	a.Equal(ErrInit, errors.Cause(err))
	_, err = New(make([]byte, 10), 1, 5, 0x100)
	a.Equal(ErrInit, errors.Cause(err))
	_, err = New(make([]byte, 10), 1<<20, 1<<20, 0)
	a.Equal(ErrInit, errors.Cause(err))
	// the size check goes first.
	_, err = New(nil, 1, 1, 0)
	a.Equal(ErrInit, errors.Cause(err))
	_, err = New(nil, 1, 0, 0)
	a.Equal(ErrNullReference, errors.Cause(err))
}

func TestStackLargerBuffer(t *testing.T) {
	a := assert.New(t)
	buf := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	s, err := New(buf, 2, 2, FlagDebug|FlagGrowUpward)
	require.NoError(t, err)
	a.Equal([]byte{0, 0, 0, 0, 0}, buf)
	a.Equal(2, s.Cap())
	a.Equal(2, s.ElemSize())
	a.NoError(s.Push([]byte{1, 2}))
	a.NoError(s.Push([]byte{3, 4}))
	a.Equal(ErrFull, s.Push([]byte{5, 6}))
	a.Equal(byte(0), buf[4])
}

func TestStackNullReference(t *testing.T) {
	a := assert.New(t)
	var s *Stack
	out := []byte{0}
	for _, err := range []error{s.Push(out), s.Pop(out), s.Peek(out)} {
		a.Equal(ErrNullReference, errors.Cause(err))
		a.Equal(StatusNullReference, StatusOf(err))
	}
	l, status := s.Len()
	a.Equal(0, l)
	a.Equal(StatusNullReference, status)
	a.Equal(0, s.Cap())
	a.Equal(0, s.ElemSize())

	s, err := New(make([]byte, 8), 4, 2, 0)
	require.NoError(t, err)
	a.Equal(ErrNullReference, errors.Cause(s.Push(nil)))
	a.Equal(ErrNullReference, errors.Cause(s.Pop(nil)))
	a.Equal(ErrNullReference, errors.Cause(s.Peek(nil)))
	a.Equal(ErrNullReference, errors.Cause(s.Push([]byte{1, 2})))
	l, status = s.Len()
	a.Equal(0, l)
	a.Equal(StatusEmpty, status)

	// longer buffers are fine, only ElemSize() bytes are used.
	a.NoError(s.Push([]byte{1, 2, 3, 4, 5, 6}))
	out = []byte{9, 9, 9, 9, 9}
	a.NoError(s.Pop(out))
	a.Equal([]byte{1, 2, 3, 4, 9}, out)
}

func TestStackZeroCapacity(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		a := assert.New(t)
		s, err := New([]byte{}, 1, 0, flag)
		require.NoError(t, err)
		a.True(s.IsEmpty())
		a.True(s.IsFull())
		a.Equal(StatusEmpty, s.Status())
		l, status := s.Len()
		a.Equal(0, l)
		a.Equal(StatusEmpty, status)
		a.Equal(ErrFull, s.Push([]byte{1}))
		a.Equal(ErrEmpty, s.Pop([]byte{1}))
	})
}

func TestStackLayout(t *testing.T) {
	a := assert.New(t)
	down := make([]byte, 3)
	s, err := New(down, 1, 3, 0)
	require.NoError(t, err)
	require.NoError(t, s.Push([]byte{1}))
	require.NoError(t, s.Push([]byte{2}))
	a.Equal([]byte{0, 2, 1}, down)

	up := make([]byte, 3)
	s, err = New(up, 1, 3, FlagGrowUpward)
	require.NoError(t, err)
	require.NoError(t, s.Push([]byte{1}))
	require.NoError(t, s.Push([]byte{2}))
	a.Equal([]byte{1, 2, 0}, up)
}

func TestStackDebugZeroesVacatedSlot(t *testing.T) {
	forEachDirection(t, func(t *testing.T, flag int) {
		buf := make([]byte, 4)
		s, err := New(buf, 2, 2, flag)
		require.NoError(t, err)
		require.NoError(t, s.Push([]byte{1, 2}))
		require.NoError(t, s.Pop(make([]byte, 2)))
		if flag&FlagDebug != 0 {
			assert.Equal(t, []byte{0, 0, 0, 0}, buf)
		} else {
			assert.NotEqual(t, []byte{0, 0, 0, 0}, buf)
		}
	})
}

type opResult struct {
	err    error
	value  byte
	length int
	status Status
}

func runOps(t *testing.T, flag int, ops string) []opResult {
	s, err := New(make([]byte, 4), 1, 4, flag)
	require.NoError(t, err)
	var results []opResult
	buf := []byte{0}
	for i, op := range ops {
		var r opResult
		switch op {
		case 'p':
			r.err = s.Push([]byte{byte(i + 1)})
		case 'o':
			buf[0] = 0
			r.err = s.Pop(buf)
			r.value = buf[0]
		case 'k':
			buf[0] = 0
			r.err = s.Peek(buf)
			r.value = buf[0]
		}
		r.length, r.status = s.Len()
		results = append(results, r)
	}
	return results
}

func TestGrowthDirectionEquivalence(t *testing.T) {
	sequences := []string{
		"",
		"o",
		"k",
		"pko",
		"pppppkooooo",
		"ppkopkppppoookpppo",
		"opopopoppppppkkkoooooooo",
	}
	for i, ops := range sequences {
		t.Run(fmt.Sprintf("seq%d", i), func(t *testing.T) {
			down := runOps(t, 0, ops)
			up := runOps(t, FlagGrowUpward, ops)
			assert.Equal(t, down, up)
			debug := runOps(t, FlagDebug, ops)
			assert.Equal(t, down, debug)
		})
	}
}
