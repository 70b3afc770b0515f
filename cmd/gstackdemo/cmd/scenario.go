// Copyright 2016 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nxgtw/go-gstack"
	"github.com/nxgtw/go-gstack/region"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config describes a demo run.
type Config struct {
	// Capacity is the number of one-byte elements.
	Capacity int
	// BufferSize is the size of the container. If 0, Capacity is used.
	BufferSize int
	Value      uint8
	Upward     bool
	Debug      bool
	// RegionFile, if set, places the container in a memory mapped file.
	RegionFile string
}

func (cfg Config) flag() int {
	var flag int
	if cfg.Upward {
		flag |= gstack.FlagGrowUpward
	}
	if cfg.Debug {
		flag |= gstack.FlagDebug
	}
	return flag
}

func (cfg Config) bufferSize() int {
	if cfg.BufferSize > 0 {
		return cfg.BufferSize
	}
	return cfg.Capacity
}

// Run pushes cfg.Value into a new stack of one-byte elements, peeks and pops it,
// reporting every step to out.
func Run(cfg Config, out io.Writer, logger zerolog.Logger) error {
	if cfg.Capacity < 0 || cfg.BufferSize < 0 {
		return errors.Wrapf(gstack.ErrInit, "invalid capacity %d or buffer size %d", cfg.Capacity, cfg.BufferSize)
	}
	container, release, err := allocContainer(cfg, logger)
	if err != nil {
		return err
	}
	defer release()
	logger.Debug().
		Int("capacity", cfg.Capacity).
		Int("buffer_size", len(container)).
		Bool("upward", cfg.Upward).
		Bool("debug", cfg.Debug).
		Msg("initializing stack")

	s, err := gstack.New(container, 1, cfg.Capacity, cfg.flag())
	if err != nil {
		return err
	}

	element := []byte{cfg.Value}
	if err = s.Push(element); err != nil {
		logger.Warn().Err(err).Msg("push failed")
	}
	fmt.Fprintf(out, "Element push : %d\n", element[0])

	if err = s.Peek(element); err != nil {
		logger.Warn().Err(err).Msg("peek failed")
	}
	fmt.Fprintf(out, "Element peek : %d\n", element[0])

	if s.IsFull() {
		fmt.Fprintln(out, "GSTACK is full")
	}

	if err = s.Pop(element); err != nil {
		logger.Warn().Err(err).Msg("pop failed")
	}
	fmt.Fprintf(out, "Element pop : %d\n", element[0])

	if s.IsEmpty() {
		fmt.Fprintln(out, "GSTACK is empty")
	}

	length, status := s.Len()
	logger.Debug().Stringer("status", status).Msg("stack length")
	fmt.Fprintf(out, "GSTACK Length : %d\n", length)
	return nil
}

func allocContainer(cfg Config, logger zerolog.Logger) ([]byte, func(), error) {
	size := cfg.bufferSize()
	if cfg.RegionFile == "" {
		return make([]byte, size), func() {}, nil
	}
	r, err := region.NewFileRegion(cfg.RegionFile, size, region.O_OPEN_OR_CREATE, os.FileMode(0644))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to map container")
	}
	release := func() {
		if err := r.Flush(false); err != nil {
			logger.Error().Err(err).Str("file", cfg.RegionFile).Msg("failed to flush container")
		}
		if err := r.Close(); err != nil {
			logger.Error().Err(err).Str("file", cfg.RegionFile).Msg("failed to unmap container")
		}
	}
	return r.Data(), release, nil
}
