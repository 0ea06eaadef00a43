// Package workload replays scripted sequences of tree operations, read
// from TOML, over the int64 algebras of the algebra package.
package workload

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultMod is the modulus used by affine-sum when none is configured.
const DefaultMod = 998244353

// Operation kinds.
const (
	KindSet   = "set"
	KindApply = "apply"
	KindGet   = "get"
	KindQuery = "query"
)

// Config is a workload: an algebra, initial values and the operations to
// replay on them.
//
//	algebra = "add-sum"
//	values = [1, 2, 3, 4, 5]
//
//	[[op]]
//	kind = "apply"
//	bpos = 1
//	epos = 3
//	value = 3
type Config struct {
	Algebra string  `toml:"algebra"`
	Mod     uint64  `toml:"mod,omitempty"`
	Values  []int64 `toml:"values"`
	Ops     []Op    `toml:"op"`
}

// Op is a single operation. Set and get use Index and Value, apply and
// query use [Bpos, Epos). Apply acts with Value: it is the addend, the
// assigned value, or the B of x -> Mul*x + B for affine-sum.
type Op struct {
	Kind  string `toml:"kind"`
	Bpos  int    `toml:"bpos,omitempty"`
	Epos  int    `toml:"epos,omitempty"`
	Index int    `toml:"index,omitempty"`
	Value int64  `toml:"value,omitempty"`
	Mul   *int64 `toml:"mul,omitempty"`
}

// mul returns the affine multiplier, 1 when unset.
func (op Op) mul() int64 {
	if op.Mul == nil {
		return 1
	}
	return *op.Mul
}

func (op Op) String() string {
	switch op.Kind {
	case KindSet:
		return fmt.Sprintf("set %d %d", op.Index, op.Value)
	case KindGet:
		return fmt.Sprintf("get %d", op.Index)
	case KindQuery:
		return fmt.Sprintf("query [%d, %d)", op.Bpos, op.Epos)
	case KindApply:
		if op.Mul != nil {
			return fmt.Sprintf("apply [%d, %d) %d*x%+d", op.Bpos, op.Epos, *op.Mul, op.Value)
		}
		return fmt.Sprintf("apply [%d, %d) %d", op.Bpos, op.Epos, op.Value)
	}
	return op.Kind
}

// Parse decodes a workload from TOML text. Unknown keys are an error.
func Parse(data string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, checkDecoded(md, &cfg)
}

// Load decodes the workload in the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("loading workload %q: %w", path, err)
	}
	if err := checkDecoded(md, &cfg); err != nil {
		return nil, fmt.Errorf("loading workload %q: %w", path, err)
	}
	return &cfg, nil
}

// Encode writes cfg to w as TOML that Parse accepts.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func checkDecoded(md toml.MetaData, cfg *Config) error {
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(names, ", "))
	}
	return cfg.Validate()
}

func (cfg *Config) mod() uint64 {
	if cfg.Mod == 0 {
		return DefaultMod
	}
	return cfg.Mod
}

// Validate checks that the algebra exists and that every operation kind
// is one it supports. Positions are not checked here: out of range
// operations are replayed and must be rejected by the tree.
func (cfg *Config) Validate() error {
	alg, err := Lookup(cfg.Algebra)
	if err != nil {
		return err
	}
	if cfg.Mod > math.MaxInt64 {
		return fmt.Errorf("modulus %d is too large", cfg.Mod)
	}
	for i, op := range cfg.Ops {
		switch op.Kind {
		case KindSet, KindGet, KindQuery:
		case KindApply:
			if !alg.Lazy {
				return fmt.Errorf("op %d: %s does not support apply", i, alg.Name)
			}
		default:
			return fmt.Errorf("op %d: unknown kind %q", i, op.Kind)
		}
	}
	return nil
}
