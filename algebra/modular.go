package algebra

import "math/bits"

// Affine is the map x -> A*x + B modulo some modulus.
type Affine struct {
	A uint64
	B uint64
}

func addMod(a, b, mod uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= mod {
		s -= mod
	}
	return s
}

// mulMod assumes a and b are already reduced.
func mulMod(a, b, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)
	return rem
}

// Reduce returns f with both coefficients reduced modulo mod.
func (f Affine) Reduce(mod uint64) Affine {
	return Affine{A: f.A % mod, B: f.B % mod}
}

// Eval returns A*x + B modulo mod.
func (f Affine) Eval(x, mod uint64) uint64 {
	f = f.Reduce(mod)
	return addMod(mulMod(f.A, x%mod, mod), f.B, mod)
}

// then returns the map applying f first and g second.
func (f Affine) then(g Affine, mod uint64) Affine {
	f, g = f.Reduce(mod), g.Reduce(mod)
	return Affine{
		A: mulMod(g.A, f.A, mod),
		B: addMod(mulMod(g.A, f.B, mod), g.B, mod),
	}
}

// AffineCompose is function composition of affine maps in index order:
// Op(f, g) applies f first, then g. It is not commutative.
type AffineCompose struct {
	Mod uint64
}

func (AffineCompose) Identity() Affine { return Affine{A: 1} }

func (c AffineCompose) Op(f, g Affine) Affine {
	return f.then(g, c.Mod)
}

// SumMod is addition modulo Mod.
type SumMod struct {
	Mod uint64
}

func (SumMod) Identity() uint64 { return 0 }

func (s SumMod) Op(a, b uint64) uint64 {
	return addMod(a%s.Mod, b%s.Mod, s.Mod)
}

// AffineSum is range-affine over range-sum modulo Mod: an action A*x + B
// applied to n elements scales B by n.
type AffineSum struct {
	SumMod
}

// NewAffineSum returns AffineSum modulo mod. It panics if mod is 0.
func NewAffineSum(mod uint64) AffineSum {
	if mod == 0 {
		panic("algebra: modulus must be positive")
	}
	return AffineSum{SumMod{Mod: mod}}
}

func (AffineSum) ActionIdentity() Affine { return Affine{A: 1} }

func (s AffineSum) Compose(newer, older Affine) Affine {
	return older.then(newer, s.Mod)
}

func (s AffineSum) Mapping(x uint64, f Affine) uint64 {
	return f.Eval(x, s.Mod)
}

func (s AffineSum) Aggregate(f Affine, length int) Affine {
	f = f.Reduce(s.Mod)
	return Affine{A: f.A, B: mulMod(f.B, uint64(length)%s.Mod, s.Mod)}
}
