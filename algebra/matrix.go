package algebra

import "gonum.org/v1/gonum/mat"

// MatProduct is the product of Dim x Dim matrices in index order. It is not
// commutative. Op never modifies its operands.
type MatProduct struct {
	Dim int
}

// Identity returns a fresh Dim x Dim identity matrix.
func (p MatProduct) Identity() *mat.Dense {
	id := mat.NewDense(p.Dim, p.Dim, nil)
	for i := 0; i < p.Dim; i++ {
		id.Set(i, i, 1)
	}
	return id
}

func (p MatProduct) Op(a, b *mat.Dense) *mat.Dense {
	c := mat.NewDense(p.Dim, p.Dim, nil)
	c.Mul(a, b)
	return c
}
