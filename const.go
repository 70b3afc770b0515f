// Copyright 2015 Aleksandr Demakin. All rights reserved.

package gstack

// flags for stack creation
const (
	// FlagGrowUpward makes the top of the stack advance from low to high indices.
	// By default stacks grow downward, from the end of the buffer to its beginning.
	FlagGrowUpward = 0x00000001
	// FlagDebug zeroes the buffer on creation and every slot vacated by Pop.
	FlagDebug = 0x00000002

	flagsMask = FlagGrowUpward | FlagDebug
)
