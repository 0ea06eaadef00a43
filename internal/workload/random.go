package workload

import (
	rng "github.com/leesper/go_rng"
)

// Random returns a workload of ops random operations over n random values
// for the named algebra. The same seed always yields the same workload.
func Random(name string, n, ops int, seed int64) (*Config, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	u := rng.NewUniformGenerator(seed)
	cfg := &Config{Algebra: name, Values: make([]int64, n), Ops: make([]Op, ops)}
	for i := range cfg.Values {
		cfg.Values[i] = u.Int64Range(alg.lo, alg.hi)
	}
	kinds := []string{KindSet, KindGet, KindQuery, KindQuery}
	if alg.Lazy {
		kinds = append(kinds, KindApply, KindApply)
	}
	for i := range cfg.Ops {
		op := Op{Kind: kinds[u.Int64n(int64(len(kinds)))]}
		switch op.Kind {
		case KindSet, KindGet:
			if n == 0 {
				op = Op{Kind: KindQuery}
				break
			}
			op.Index = int(u.Int64n(int64(n)))
			if op.Kind == KindSet {
				op.Value = u.Int64Range(alg.lo, alg.hi)
			}
		default:
			op.Bpos = int(u.Int64n(int64(n) + 1))
			op.Epos = op.Bpos + int(u.Int64n(int64(n-op.Bpos)+1))
		}
		if op.Kind == KindApply {
			op.Value = u.Int64Range(-50, 50)
			if name == "affine-sum" {
				op.Mul = ptr(u.Int64Range(0, 5))
			}
		}
		cfg.Ops[i] = op
	}
	return cfg, nil
}
