package algebra

import "github.com/shopspring/decimal"

// DecimalSum is exact decimal addition, for monetary amounts.
type DecimalSum struct{}

func (DecimalSum) Identity() decimal.Decimal { return decimal.Zero }

func (DecimalSum) Op(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// DecimalAddSum is range-add over range-sum on decimals.
type DecimalAddSum struct {
	DecimalSum
}

func (DecimalAddSum) ActionIdentity() decimal.Decimal { return decimal.Zero }

func (DecimalAddSum) Compose(newer, older decimal.Decimal) decimal.Decimal {
	return newer.Add(older)
}

func (DecimalAddSum) Mapping(x, f decimal.Decimal) decimal.Decimal {
	return x.Add(f)
}

func (DecimalAddSum) Aggregate(f decimal.Decimal, length int) decimal.Decimal {
	return f.Mul(decimal.NewFromInt(int64(length)))
}
