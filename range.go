package segtree

import "fmt"

// Range represents a range [Bpos, Epos)
// only valid for Bpos <= Epos
type Range struct {
	Bpos int
	Epos int
}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	return r.Epos - r.Bpos
}

// Empty reports whether the range holds no position.
func (r Range) Empty() bool {
	return r.Bpos >= r.Epos
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Bpos, r.Epos)
}

// checkRange validates ranze against a tree of n elements.
func checkRange(ranze Range, n int) error {
	if ranze.Bpos > ranze.Epos {
		return fmt.Errorf("%w: %s", ErrInvalidRange, ranze)
	}
	if ranze.Bpos < 0 || ranze.Epos > n {
		return fmt.Errorf("%w: %s exceeds [0, %d]", ErrIndexOutOfRange, ranze, n)
	}
	return nil
}

// checkIndex validates a single position against a tree of n elements.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// checkBound validates a search boundary, which may equal n.
func checkBound(i, n int) error {
	if i < 0 || i > n {
		return fmt.Errorf("%w: bound %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}
