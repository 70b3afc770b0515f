// Copyright 2016 Aleksandr Demakin. All rights reserved.

// Package gstack provides fixed-capacity stacks placed in caller-owned memory.
// The stack never allocates and never frees its storage: the caller passes
// a buffer (a plain byte slice, a typed slice, or a memory region from the
// region subpackage) and the stack only keeps the bookkeeping.
//	Stack    - opaque elements of a fixed byte size over a []byte.
//	Typed[T] - elements of type T over a []T.
// Both can grow either downward (the default) or upward, see FlagGrowUpward.
// None of the stacks are safe for concurrent use.
package gstack
