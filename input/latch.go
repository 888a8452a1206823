package input

import "github.com/lixenwraith/grid-snake/core"

// Latch buffers at most one direction change per tick and rejects reversals
type Latch struct {
	dir   core.Direction
	taken bool
}

// NewLatch creates a latch with the initial heading
func NewLatch(dir core.Direction) *Latch {
	return &Latch{dir: dir}
}

// Record takes the latch for this tick with the first direction offered, later calls
// are ignored until ConsumeAndReset. The heading changes only if dir is neither the
// current heading nor its reverse. Returns whether the heading changed
func (l *Latch) Record(dir core.Direction) bool {
	if l.taken {
		return false
	}
	l.taken = true
	if dir == l.dir || dir.IsReverseOf(l.dir) {
		return false
	}
	l.dir = dir
	return true
}

// ConsumeAndReset clears the per-tick flag and returns the heading
func (l *Latch) ConsumeAndReset() core.Direction {
	l.taken = false
	return l.dir
}

// Direction returns the current heading
func (l *Latch) Direction() core.Direction {
	return l.dir
}

// Taken reports whether a direction was offered this tick
func (l *Latch) Taken() bool {
	return l.taken
}
