package command

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/AlexWan0/go-segtree"
	"github.com/AlexWan0/go-segtree/internal/workload"
)

// Verify implements subcommands.Command for the "verify" command.
type Verify struct {
	algebra string
	n       int
	ops     int
	seed    int64
	mod     uint64
	dump    string
}

// Name implements subcommands.Command.
func (*Verify) Name() string {
	return "verify"
}

// Synopsis implements subcommands.Command.
func (*Verify) Synopsis() string {
	return "checks algebra laws and cross-checks trees against a naive array on random workloads"
}

// Usage implements subcommands.Command.
func (*Verify) Usage() string {
	return `verify [flags]

Without -algebra every registered algebra is verified.
`
}

// SetFlags implements subcommands.Command.
func (v *Verify) SetFlags(f *flag.FlagSet) {
	f.StringVar(&v.algebra, "algebra", "", "algebra to verify, all when empty.")
	f.IntVar(&v.n, "n", 64, "number of elements.")
	f.IntVar(&v.ops, "ops", 1000, "number of random operations.")
	f.Int64Var(&v.seed, "seed", 1, "random seed.")
	f.Uint64Var(&v.mod, "mod", workload.DefaultMod, "modulus for affine-sum.")
	f.StringVar(&v.dump, "dump", "", "file to write the generated workload of a single -algebra to.")
}

// Execute implements subcommands.Command.Execute.
func (v *Verify) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	log := loggerFrom(args)
	if f.NArg() != 0 || v.n < 0 || v.ops < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if v.dump != "" && v.algebra == "" {
		log.Error("-dump requires -algebra")
		return subcommands.ExitUsageError
	}

	algs := workload.Algebras()
	if v.algebra != "" {
		alg, err := workload.Lookup(v.algebra)
		if err != nil {
			log.WithError(err).Error("invalid -algebra")
			return subcommands.ExitUsageError
		}
		algs = []*workload.Algebra{alg}
	}

	status := subcommands.ExitSuccess
	for _, alg := range algs {
		if !v.verify(log.WithField("algebra", alg.Name), alg) {
			status = subcommands.ExitFailure
		}
	}
	return status
}

func (v *Verify) verify(log logrus.FieldLogger, alg *workload.Algebra) bool {
	if err := alg.CheckLaws(v.mod); err != nil {
		log.WithError(err).Error("law check failed")
		return false
	}
	cfg, err := workload.Random(alg.Name, v.n, v.ops, v.seed)
	if err != nil {
		log.WithError(err).Error("generating workload")
		return false
	}
	cfg.Mod = v.mod
	if v.dump != "" {
		if err := dump(v.dump, cfg); err != nil {
			log.WithError(err).Error("writing workload")
			return false
		}
	}
	if err := workload.Verify(cfg, segtree.WithLogger(log)); err != nil {
		log.WithError(err).Error("tree diverged from the reference")
		return false
	}
	log.WithFields(logrus.Fields{"n": v.n, "ops": v.ops, "seed": v.seed}).Info("verified")
	return true
}

func dump(path string, cfg *workload.Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := workload.Encode(file, cfg); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
