// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatusErrRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusInitError, StatusNullReference, StatusFull, StatusEmpty} {
		assert.Equal(t, s, StatusOf(s.Err()), s.String())
		assert.Equal(t, s, StatusOf(errors.Wrap(s.Err(), "context")), s.String())
	}
	assert.Error(t, Status(42).Err())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "empty", StatusEmpty.String())
	assert.Equal(t, "full", StatusFull.String())
	assert.Equal(t, "status(42)", Status(42).String())
	assert.Equal(t, "status(-1)", Status(-1).String())
}

func TestStatusOfForeignError(t *testing.T) {
	assert.Equal(t, StatusInitError, StatusOf(errors.New("other")))
}
