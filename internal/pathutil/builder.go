package pathutil

import (
	"strconv"
	"sync"
)

// PathBuilder accumulates a dotted JSON path in a single buffer. Each Push
// remembers where the buffer ended so Pop can truncate back to it.
type PathBuilder struct {
	buf   []byte
	marks []int
}

func (p *PathBuilder) mark() { p.marks = append(p.marks, len(p.buf)) }

// Push appends a key segment, separated from the previous one by a dot.
func (p *PathBuilder) Push(segment string) {
	p.mark()
	if len(p.buf) > 0 {
		p.buf = append(p.buf, '.')
	}
	p.buf = append(p.buf, segment...)
}

// PushIndex appends an array index such as "[3]".
func (p *PathBuilder) PushIndex(i int) {
	p.mark()
	p.buf = append(p.buf, '[')
	p.buf = strconv.AppendInt(p.buf, int64(i), 10)
	p.buf = append(p.buf, ']')
}

// Pop drops the most recent segment. It is a no-op on an empty path.
func (p *PathBuilder) Pop() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	p.buf = p.buf[:p.marks[n-1]]
	p.marks = p.marks[:n-1]
}

// Depth is the number of segments pushed and not yet popped.
func (p *PathBuilder) Depth() int { return len(p.marks) }

// Reset empties the path, keeping its storage.
func (p *PathBuilder) Reset() {
	p.buf = p.buf[:0]
	p.marks = p.marks[:0]
}

func (p *PathBuilder) String() string { return string(p.buf) }

// Join appends child to parent using the same separator rules as Push and
// PushIndex: children starting with '[' attach without a dot.
func Join(parent, child string) string {
	if parent == "" {
		return child
	}
	if child != "" && child[0] == '[' {
		return parent + child
	}
	return parent + "." + child
}

// Builders larger than this are left for the garbage collector.
const maxPooledBytes = 4 << 10

var builders = sync.Pool{
	New: func() any { return &PathBuilder{buf: make([]byte, 0, 128), marks: make([]int, 0, 16)} },
}

// Get returns an empty PathBuilder from a shared pool.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put hands p back to the pool.
func Put(p *PathBuilder) {
	if p == nil || cap(p.buf) > maxPooledBytes {
		return
	}
	builders.Put(p)
}
