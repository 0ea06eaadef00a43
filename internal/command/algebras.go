package command

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/AlexWan0/go-segtree/internal/workload"
)

// Algebras implements subcommands.Command for the "algebras" command.
type Algebras struct {
	Out io.Writer
}

// Name implements subcommands.Command.
func (*Algebras) Name() string {
	return "algebras"
}

// Synopsis implements subcommands.Command.
func (*Algebras) Synopsis() string {
	return "lists the algebras workloads can use"
}

// Usage implements subcommands.Command.
func (*Algebras) Usage() string {
	return `algebras
`
}

// SetFlags implements subcommands.Command.
func (*Algebras) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (a *Algebras) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	w := tabwriter.NewWriter(output(a.Out), 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tKIND\tDESCRIPTION\n")
	for _, alg := range workload.Algebras() {
		kind := "plain"
		if alg.Lazy {
			kind = "lazy"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", alg.Name, kind, alg.Summary)
	}
	if err := w.Flush(); err != nil {
		loggerFrom(args).WithError(err).Error("writing algebras")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
