// Package lawcheck verifies the algebraic laws segment trees rely on,
// using sample elements supplied by the caller.
//
// The trees cannot detect a broken algebra at runtime; a failing law shows
// up as silently wrong query results.
package lawcheck

import (
	"fmt"

	"github.com/AlexWan0/go-segtree"
)

// LawError reports a violated law together with the elements that break it.
type LawError struct {
	Law     string
	Witness string
}

func (e *LawError) Error() string {
	return fmt.Sprintf("lawcheck: %s violated by %s", e.Law, e.Witness)
}

func violated(law, format string, args ...interface{}) error {
	return &LawError{Law: law, Witness: fmt.Sprintf(format, args...)}
}

// Monoid checks the identity and associativity laws of m over every
// element and every triple of samples.
func Monoid[T any](m segtree.Monoid[T], samples []T, eq func(a, b T) bool) error {
	e := m.Identity()
	for _, a := range samples {
		if !eq(m.Op(e, a), a) {
			return violated("left identity", "a=%v", a)
		}
		if !eq(m.Op(a, e), a) {
			return violated("right identity", "a=%v", a)
		}
	}
	for _, a := range samples {
		for _, b := range samples {
			ab := m.Op(a, b)
			for _, c := range samples {
				if !eq(m.Op(ab, c), m.Op(a, m.Op(b, c))) {
					return violated("associativity", "a=%v b=%v c=%v", a, b, c)
				}
			}
		}
	}
	return nil
}

// ExtMonoid checks the value monoid of a and the action laws: action
// identity, composition identity, order and associativity, and the
// aggregate law for every length in [1, maxLen]. Actions are compared
// through their effect on xs, so F need not be comparable.
func ExtMonoid[X, F any](a segtree.ExtMonoid[X, F], xs []X, fs []F, maxLen int, eq func(a, b X) bool) error {
	if err := Monoid[X](a, xs, eq); err != nil {
		return err
	}
	id := a.ActionIdentity()
	for _, x := range xs {
		if !eq(a.Mapping(x, id), x) {
			return violated("action identity", "x=%v", x)
		}
		for _, f := range fs {
			fx := a.Mapping(x, f)
			if !eq(a.Mapping(x, a.Compose(f, id)), fx) || !eq(a.Mapping(x, a.Compose(id, f)), fx) {
				return violated("compose identity", "x=%v f=%v", x, f)
			}
			for _, g := range fs {
				if !eq(a.Mapping(x, a.Compose(g, f)), a.Mapping(fx, g)) {
					return violated("compose order", "x=%v older=%v newer=%v", x, f, g)
				}
				for _, h := range fs {
					lhs := a.Mapping(x, a.Compose(a.Compose(h, g), f))
					rhs := a.Mapping(x, a.Compose(h, a.Compose(g, f)))
					if !eq(lhs, rhs) {
						return violated("compose associativity", "x=%v f=%v g=%v h=%v", x, f, g, h)
					}
				}
			}
		}
	}
	if len(xs) == 0 {
		return nil
	}
	for length := 1; length <= maxLen; length++ {
		for start := range xs {
			window := make([]X, length)
			for i := range window {
				window[i] = xs[(start+i)%len(xs)]
			}
			combined := fold[X](a, window)
			for _, f := range fs {
				mapped := a.Identity()
				for _, x := range window {
					mapped = a.Op(mapped, a.Mapping(x, f))
				}
				once := a.Mapping(combined, a.Aggregate(f, length))
				if !eq(once, mapped) {
					return violated("aggregate", "window=%v f=%v length=%d", window, f, length)
				}
				for _, g := range fs {
					composite := a.Mapping(combined, a.Aggregate(a.Compose(g, f), length))
					stepwise := a.Mapping(once, a.Aggregate(g, length))
					if !eq(composite, stepwise) {
						return violated("aggregate of composition", "window=%v older=%v newer=%v length=%d", window, f, g, length)
					}
				}
			}
		}
	}
	return nil
}

func fold[T any](m segtree.Monoid[T], xs []T) T {
	acc := m.Identity()
	for _, x := range xs {
		acc = m.Op(acc, x)
	}
	return acc
}
