package command

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/AlexWan0/go-segtree"
	"github.com/AlexWan0/go-segtree/internal/workload"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	output string
	verify bool

	// Out receives results when no -output file is given.
	Out io.Writer
}

// Name implements subcommands.Command.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.
func (*Run) Synopsis() string {
	return "replays a TOML workload and prints every get and query result"
}

// Usage implements subcommands.Command.
func (*Run) Usage() string {
	return `run [flags] <workload.toml>
`
}

// SetFlags implements subcommands.Command.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.output, "output", "", "file to write results to instead of stdout.")
	f.BoolVar(&r.verify, "verify", false, "also replay the workload against the naive reference.")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	log := loggerFrom(args)
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)
	cfg, err := workload.Load(path)
	if err != nil {
		log.WithError(err).Error("invalid workload")
		return subcommands.ExitFailure
	}

	out := output(r.Out)
	if r.output != "" {
		file, err := os.OpenFile(r.output, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
		if err != nil {
			log.WithError(err).Error("opening output")
			return subcommands.ExitFailure
		}
		defer func() {
			if err := file.Close(); err != nil {
				log.WithError(err).Error("flushing output")
			}
		}()
		out = file
	}

	log = log.WithFields(logrus.Fields{"workload": path, "algebra": cfg.Algebra})
	opts := []segtree.Option{segtree.WithLogger(log), segtree.WithName(path)}
	if err := workload.Run(cfg, out, opts...); err != nil {
		log.WithError(err).Error("workload failed")
		return subcommands.ExitFailure
	}
	if r.verify {
		if err := workload.Verify(cfg, opts...); err != nil {
			log.WithError(err).Error("tree diverged from the reference")
			return subcommands.ExitFailure
		}
		log.Info("tree agrees with the reference")
	}
	log.WithField("ops", len(cfg.Ops)).Debug("workload done")
	return subcommands.ExitSuccess
}
