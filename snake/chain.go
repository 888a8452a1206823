// Package snake implements the segment chain, the ordered head-to-tail body of the snake
package snake

import "github.com/lixenwraith/grid-snake/core"

// Chain is an ordered sequence of segment positions, head first
// Length is always at least one and never shrinks
type Chain struct {
	segments []core.Point
}

// New creates a chain from a head and trailing segment positions
func New(head core.Point, tail ...core.Point) *Chain {
	segments := make([]core.Point, 0, 1+len(tail))
	segments = append(segments, head)
	segments = append(segments, tail...)
	return &Chain{segments: segments}
}

// Len returns the number of segments
func (c *Chain) Len() int {
	return len(c.segments)
}

// Head returns the head position, O(1)
func (c *Chain) Head() core.Point {
	return c.segments[0]
}

// TailPosition returns the last segment's position
func (c *Chain) TailPosition() core.Point {
	return c.segments[len(c.segments)-1]
}

// At returns the position of segment i, 0 is the head
func (c *Chain) At(i int) core.Point {
	return c.segments[i]
}

// Positions returns a copy of all positions, head first
func (c *Chain) Positions() []core.Point {
	out := make([]core.Point, len(c.segments))
	copy(out, c.segments)
	return out
}

// PrependPropagate moves the head to newHead and shifts every other segment into the
// position its predecessor held before the update. Returns the tail's previous position
func (c *Chain) PrependPropagate(newHead core.Point) core.Point {
	last := len(c.segments) - 1
	vacated := c.segments[last]
	// copy handles the overlap back to front, each old position is read before it is overwritten
	copy(c.segments[1:], c.segments[:last])
	c.segments[0] = newHead
	return vacated
}

// AppendAtTail adds a segment at the current tail position
// The duplicate resolves on the next propagation, when the old tail moves forward
func (c *Chain) AppendAtTail() {
	c.segments = append(c.segments, c.TailPosition())
}
