package segtree

import (
	"fmt"

	"github.com/ugorji/go/codec"
)

// Snapshots are msgpack streams. The algebra itself is never encoded: a
// tree must be unmarshaled into a receiver built over the same algebra,
// e.g. NewEmpty(m, 0). Values must be encodable by codec.

// MarshalBinary encodes the tree into a binary form and returns the result.
func (st *SegTree[T, M]) MarshalBinary() (out []byte, err error) {
	var mh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &mh)
	err = enc.Encode(st.n)
	if err != nil {
		return
	}
	err = enc.Encode(st.Values())
	return
}

// UnmarshalBinary decodes a tree from a binary form generated by
// MarshalBinary, replacing the receiver's contents.
func (st *SegTree[T, M]) UnmarshalBinary(in []byte) (err error) {
	var mh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &mh)
	n := 0
	err = dec.Decode(&n)
	if err != nil {
		return
	}
	var leaves []T
	err = dec.Decode(&leaves)
	if err != nil {
		return
	}
	if n < 0 || len(leaves) != n {
		return fmt.Errorf("%w: length %d with %d leaves", ErrCorruptSnapshot, n, len(leaves))
	}
	var opts []Option
	if st.log != nil {
		opts = append(opts, WithLogger(st.log))
	}
	st.init(n, opts)
	copy(st.d[st.sz:], leaves)
	st.build()
	st.log.Debug("decoded segment tree snapshot")
	return nil
}

// MarshalBinary encodes the lazy tree into a binary form and returns the
// result. Pending tags are kept pending: only dirty nodes are written,
// each as its node index and raw tag.
func (lt *LazySegTree[X, F, A]) MarshalBinary() (out []byte, err error) {
	var mh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &mh)
	nodes := make([]int, 0)
	tags := make([]F, 0)
	for k, dirty := range lt.dirty {
		if dirty {
			nodes = append(nodes, k)
			tags = append(tags, lt.lz[k])
		}
	}
	err = enc.Encode(lt.n)
	if err != nil {
		return
	}
	err = enc.Encode(lt.d)
	if err != nil {
		return
	}
	err = enc.Encode(nodes)
	if err != nil {
		return
	}
	err = enc.Encode(tags)
	return
}

// UnmarshalBinary decodes a lazy tree from a binary form generated by
// MarshalBinary, replacing the receiver's contents.
func (lt *LazySegTree[X, F, A]) UnmarshalBinary(in []byte) (err error) {
	var mh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(in, &mh)
	n := 0
	err = dec.Decode(&n)
	if err != nil {
		return
	}
	var d []X
	err = dec.Decode(&d)
	if err != nil {
		return
	}
	var nodes []int
	err = dec.Decode(&nodes)
	if err != nil {
		return
	}
	var tags []F
	err = dec.Decode(&tags)
	if err != nil {
		return
	}
	if n < 0 {
		return fmt.Errorf("%w: length %d", ErrCorruptSnapshot, n)
	}
	sz := ceilPow2(n)
	if len(d) != 2*sz {
		return fmt.Errorf("%w: %d nodes for length %d", ErrCorruptSnapshot, len(d), n)
	}
	if len(nodes) != len(tags) {
		return fmt.Errorf("%w: %d dirty nodes with %d tags", ErrCorruptSnapshot, len(nodes), len(tags))
	}
	for _, k := range nodes {
		if k < 1 || k >= sz {
			return fmt.Errorf("%w: tag on node %d outside [1, %d)", ErrCorruptSnapshot, k, sz)
		}
	}
	var opts []Option
	if lt.log != nil {
		opts = append(opts, WithLogger(lt.log))
	}
	lt.init(n, opts)
	copy(lt.d, d)
	for i, k := range nodes {
		lt.lz[k] = tags[i]
		lt.dirty[k] = true
	}
	lt.log.Debug("decoded lazy segment tree snapshot")
	return nil
}
