// Copyright 2015 Aleksandr Demakin. All rights reserved.

//go:build darwin || freebsd || linux

package region

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type memoryRegion struct {
	data []byte
	size int
}

func newAnonRegion(size int) (*memoryRegion, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrap(err, "mmap failed")
	}
	return &memoryRegion{data: data, size: size}, nil
}

func newFileRegion(file *os.File, size int) (*memoryRegion, error) {
	data, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap failed")
	}
	return &memoryRegion{data: data, size: size}, nil
}

// Close unmaps the region. The data must not be used after that.
func (region *memoryRegion) Close() error {
	if region.data != nil {
		err := unix.Munmap(region.data)
		region.data = nil
		region.size = 0
		return errors.Wrap(err, "munmap failed")
	}
	return nil
}

// Data returns region's memory.
func (region *memoryRegion) Data() []byte {
	return region.data
}

// Flush writes region's changes to the backing file.
func (region *memoryRegion) Flush(async bool) error {
	if region.data == nil {
		return errors.New("region is closed")
	}
	flag := unix.MS_SYNC
	if async {
		flag = unix.MS_ASYNC
	}
	return errors.Wrap(unix.Msync(region.data, flag), "msync failed")
}

// Size returns region's size.
func (region *memoryRegion) Size() int {
	return region.size
}
