// Copyright 2015 Aleksandr Demakin. All rights reserved.

// Package region provides memory regions, which can be used as caller-owned storage for stacks.
// A region is either anonymous (private to the process), or backed by a file, so that
// its bytes survive the process.
package region

import (
	"os"

	"github.com/pkg/errors"
)

// flags for opening/creation of file-backed regions
const (
	O_OPEN_OR_CREATE = 0x00000001
	O_CREATE_ONLY    = 0x00000002
	O_OPEN_ONLY      = 0x00000004
)

// MemoryRegion is a mapped memory area of a fixed size.
// Its data remains valid until Close is called.
type MemoryRegion struct {
	*memoryRegion
}

// NewAnonRegion maps size bytes of zeroed memory, which is not backed by any file.
func NewAnonRegion(size int) (*MemoryRegion, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid region size %d", size)
	}
	impl, err := newAnonRegion(size)
	if err != nil {
		return nil, err
	}
	return &MemoryRegion{impl}, nil
}

// NewFileRegion maps size bytes of the file at path for reading and writing.
//	flag - one of O_OPEN_OR_CREATE, O_CREATE_ONLY, O_OPEN_ONLY.
// A created file is extended to size bytes. An existing file must be at least size bytes long.
func NewFileRegion(path string, size int, flag int, perm os.FileMode) (*MemoryRegion, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid region size %d", size)
	}
	file, created, err := openFile(path, flag, perm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open region file")
	}
	defer file.Close()
	if created {
		if err = file.Truncate(int64(size)); err != nil {
			os.Remove(path)
			return nil, errors.Wrap(err, "failed to set region file size")
		}
	} else {
		info, err := file.Stat()
		if err != nil {
			return nil, errors.Wrap(err, "failed to stat region file")
		}
		if info.Size() < int64(size) {
			return nil, errors.Errorf("invalid mapping length: file has %d bytes, need %d", info.Size(), size)
		}
	}
	impl, err := newFileRegion(file, size)
	if err != nil {
		if created {
			os.Remove(path)
		}
		return nil, err
	}
	return &MemoryRegion{impl}, nil
}

func openFile(path string, flag int, perm os.FileMode) (*os.File, bool, error) {
	const rw = os.O_RDWR
	switch flag {
	case O_OPEN_ONLY:
		file, err := os.OpenFile(path, rw, perm)
		return file, false, err
	case O_CREATE_ONLY:
		file, err := os.OpenFile(path, rw|os.O_CREATE|os.O_EXCL, perm)
		return file, err == nil, err
	case O_OPEN_OR_CREATE:
		const attempts = 16
		var err error
		var file *os.File
		for attempt := 0; attempt < attempts; attempt++ {
			if file, err = os.OpenFile(path, rw|os.O_CREATE|os.O_EXCL, perm); !os.IsExist(err) {
				return file, err == nil, err
			}
			if file, err = os.OpenFile(path, rw, perm); !os.IsNotExist(err) {
				return file, false, err
			}
		}
		return nil, false, err
	default:
		return nil, false, errors.Errorf("unknown open mode %d", flag)
	}
}
