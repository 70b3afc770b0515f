// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build !darwin && !freebsd && !linux

package region

import (
	"os"

	"github.com/pkg/errors"
)

var errUnsupported = errors.New("memory regions are not supported on this platform")

type memoryRegion struct{}

func newAnonRegion(size int) (*memoryRegion, error) {
	return nil, errUnsupported
}

func newFileRegion(file *os.File, size int) (*memoryRegion, error) {
	return nil, errUnsupported
}

func (region *memoryRegion) Close() error { return nil }

func (region *memoryRegion) Data() []byte { return nil }

func (region *memoryRegion) Flush(async bool) error { return errUnsupported }

func (region *memoryRegion) Size() int { return 0 }
