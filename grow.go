// Copyright 2016 Aleksandr Demakin. All rights reserved.

package gstack

// grower translates the stack's raw counter into slot indices.
// The raw counter is the number of elements for upward stacks,
// and the index of the top element for downward stacks.
type grower interface {
	reset(capacity int) int
	empty(count, capacity int) bool
	full(count, capacity int) bool
	// push updates the counter and returns the slot to write the new element to.
	push(count *int) int
	// pop updates the counter and returns the slot of the removed element.
	pop(count *int) int
	top(count int) int
	length(count, capacity int) int
}

func growerFromFlag(flag int) grower {
	if flag&FlagGrowUpward != 0 {
		return upward{}
	}
	return downward{}
}

type upward struct{}

func (upward) reset(int) int { return 0 }

func (upward) empty(count, _ int) bool { return count == 0 }

func (upward) full(count, capacity int) bool { return count >= capacity }

func (upward) push(count *int) int {
	slot := *count
	*count++
	return slot
}

func (upward) pop(count *int) int {
	*count--
	return *count
}

func (upward) top(count int) int { return count - 1 }

func (upward) length(count, _ int) int { return count }

type downward struct{}

func (downward) reset(capacity int) int { return capacity }

func (downward) empty(count, capacity int) bool { return count == capacity }

func (downward) full(count, _ int) bool { return count == 0 }

func (downward) push(count *int) int {
	*count--
	return *count
}

func (downward) pop(count *int) int {
	slot := *count
	*count++
	return slot
}

func (downward) top(count int) int { return count }

func (downward) length(count, capacity int) int { return capacity - count }

// classify returns the tri-state status of a valid stack.
// An empty stack is reported as StatusEmpty even if its capacity is 0.
func classify(g grower, count, capacity int) Status {
	switch {
	case g.empty(count, capacity):
		return StatusEmpty
	case g.full(count, capacity):
		return StatusFull
	default:
		return StatusOK
	}
}
