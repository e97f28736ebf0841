// Package layout tracks vertical placement and identifier allocation while
// the dashboard is assembled group by group.
package layout

import "fmt"

// Cursor is the running vertical offset of the next band of panels.
// Group builders place panels at the cursor and advance it by the tallest
// panel they placed; the zero value starts at the top of the grid.
type Cursor struct {
	y int
}

// Y returns the current vertical offset.
func (c *Cursor) Y() int {
	return c.y
}

// Take returns the current vertical offset and advances the cursor by h.
func (c *Cursor) Take(h int) int {
	y := c.y
	c.y += h
	return y
}

// IDAllocator hands out panel identifiers, guaranteeing uniqueness across
// one assembly pass. It replaces the convention of reserving numeric
// ranges per group by hand.
type IDAllocator struct {
	next int
	used map[int]bool
}

// NewIDAllocator returns an allocator starting at id 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1, used: make(map[int]bool)}
}

// Next returns the lowest identifier not yet handed out.
func (a *IDAllocator) Next() int {
	for a.used[a.next] {
		a.next++
	}
	id := a.next
	a.used[id] = true
	a.next++
	return id
}

// Claim reserves an explicit identifier, failing if it was already handed
// out during this pass.
func (a *IDAllocator) Claim(id int) error {
	if a.used[id] {
		return fmt.Errorf("panel id %d already in use", id)
	}
	a.used[id] = true
	return nil
}
