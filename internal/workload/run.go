package workload

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/AlexWan0/go-segtree"
)

// Divergence reports the first point where a tree and its reference
// array disagree.
type Divergence struct {
	Op        int // index into Config.Ops, or len(Ops) for the final values
	Desc      string
	Tree      string
	Reference string
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("workload: op %d (%s): tree gave %s, reference gave %s", d.Op, d.Desc, d.Tree, d.Reference)
}

func build(cfg *Config, opts []segtree.Option) (tree, ref engine, err error) {
	if err = cfg.Validate(); err != nil {
		return
	}
	alg, _ := Lookup(cfg.Algebra)
	tree, ref = alg.build(cfg.mod(), cfg.Values, opts)
	return
}

// inRange reports whether the tree should accept op.
func inRange(op Op, n int) bool {
	switch op.Kind {
	case KindSet, KindGet:
		return op.Index >= 0 && op.Index < n
	default:
		return op.Bpos >= 0 && op.Bpos <= op.Epos && op.Epos <= n
	}
}

func step(e engine, op Op) (int64, error) {
	switch op.Kind {
	case KindSet:
		return 0, e.Set(op.Index, op.Value)
	case KindApply:
		return 0, e.Apply(segtree.Range{Bpos: op.Bpos, Epos: op.Epos}, op)
	case KindGet:
		return e.Get(op.Index)
	default:
		return e.Query(segtree.Range{Bpos: op.Bpos, Epos: op.Epos})
	}
}

func reports(op Op) bool {
	return op.Kind == KindGet || op.Kind == KindQuery
}

// Run replays cfg on a tree and writes one line per get or query to w.
// It stops at the first operation the tree rejects.
func Run(cfg *Config, w io.Writer, opts ...segtree.Option) error {
	tree, _, err := build(cfg, opts)
	if err != nil {
		return err
	}
	for i, op := range cfg.Ops {
		v, err := step(tree, op)
		if err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op, err)
		}
		if reports(op) {
			if _, err := fmt.Fprintf(w, "%s = %d\n", op, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Verify replays cfg on both a tree and a naive.Array and returns a
// *Divergence at the first disagreement. Operations out of range must be
// rejected by the tree; they are skipped on the reference.
func Verify(cfg *Config, opts ...segtree.Option) error {
	tree, ref, err := build(cfg, opts)
	if err != nil {
		return err
	}
	n := len(cfg.Values)
	for i, op := range cfg.Ops {
		got, err := step(tree, op)
		if !inRange(op, n) {
			if err == nil {
				return &Divergence{Op: i, Desc: op.String(), Tree: "success", Reference: "out of range"}
			}
			continue
		}
		if err != nil {
			return &Divergence{Op: i, Desc: op.String(), Tree: err.Error(), Reference: "success"}
		}
		want, _ := step(ref, op)
		if reports(op) && got != want {
			return &Divergence{Op: i, Desc: op.String(), Tree: fmt.Sprint(got), Reference: fmt.Sprint(want)}
		}
	}
	if diff := cmp.Diff(ref.Values(), tree.Values()); diff != "" {
		return &Divergence{Op: len(cfg.Ops), Desc: "final values", Tree: "(-reference +tree)", Reference: diff}
	}
	return nil
}
