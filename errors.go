package segtree

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index or a range endpoint
	// falls outside [0, Len()].
	ErrIndexOutOfRange = errors.New("segtree: index out of range")

	// ErrInvalidRange is returned for a range with Bpos > Epos.
	ErrInvalidRange = errors.New("segtree: invalid range")

	// ErrCorruptSnapshot is returned by UnmarshalBinary when the encoded
	// tree does not have a consistent shape.
	ErrCorruptSnapshot = errors.New("segtree: corrupt snapshot")
)
