package command

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/AlexWan0/go-segtree/internal/workload"
)

func execute(cmd subcommands.Command, log logrus.FieldLogger, args ...string) subcommands.ExitStatus {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return cmd.Execute(context.Background(), fs, log)
}

const workloadText = `
algebra = "assign-sum"
values = [1, 2, 3, 4]

[[op]]
kind = "apply"
bpos = 1
epos = 3
value = 7

[[op]]
kind = "query"
bpos = 0
epos = 4
`

func TestCommands(t *testing.T) {
	Convey("Given a logger and a workload file", t, func() {
		logger, hook := test.NewNullLogger()
		dir := t.TempDir()
		path := filepath.Join(dir, "w.toml")
		So(os.WriteFile(path, []byte(workloadText), 0644), ShouldBeNil)

		Convey("run prints the query results", func() {
			var out bytes.Buffer
			So(execute(&Run{Out: &out}, logger, path), ShouldEqual, subcommands.ExitSuccess)
			So(out.String(), ShouldEqual, "query [0, 4) = 19\n")
		})
		Convey("run can verify and write to a file", func() {
			dst := filepath.Join(dir, "out.txt")
			So(execute(&Run{}, logger, "-verify", "-output", dst, path), ShouldEqual, subcommands.ExitSuccess)
			got, err := os.ReadFile(dst)
			So(err, ShouldBeNil)
			So(string(got), ShouldEqual, "query [0, 4) = 19\n")
			So(hook.LastEntry().Message, ShouldEqual, "tree agrees with the reference")
		})
		Convey("run needs exactly one workload", func() {
			So(execute(&Run{}, logger), ShouldEqual, subcommands.ExitUsageError)
			So(execute(&Run{}, logger, filepath.Join(dir, "missing.toml")), ShouldEqual, subcommands.ExitFailure)
			So(hook.LastEntry().Level, ShouldEqual, logrus.ErrorLevel)
		})
		Convey("verify passes for every algebra", func() {
			So(execute(&Verify{}, logger, "-n", "20", "-ops", "200"), ShouldEqual, subcommands.ExitSuccess)
			So(len(hook.AllEntries()), ShouldEqual, len(workload.Algebras()))
		})
		Convey("verify can dump the generated workload", func() {
			dst := filepath.Join(dir, "gen.toml")
			So(execute(&Verify{}, logger, "-algebra", "affine-sum", "-mod", "13", "-dump", dst), ShouldEqual, subcommands.ExitSuccess)
			cfg, err := workload.Load(dst)
			So(err, ShouldBeNil)
			So(cfg.Mod, ShouldEqual, 13)
			So(workload.Verify(cfg), ShouldBeNil)
		})
		Convey("verify rejects bad flags", func() {
			So(execute(&Verify{}, logger, "-algebra", "median"), ShouldEqual, subcommands.ExitUsageError)
			So(execute(&Verify{}, logger, "-dump", filepath.Join(dir, "x.toml")), ShouldEqual, subcommands.ExitUsageError)
			So(execute(&Verify{}, logger, "-n", "-1"), ShouldEqual, subcommands.ExitUsageError)
		})
		Convey("algebras lists the registry", func() {
			var out bytes.Buffer
			So(execute(&Algebras{Out: &out}, logger), ShouldEqual, subcommands.ExitSuccess)
			So(out.String(), ShouldContainSubstring, "affine-sum")
			So(out.String(), ShouldContainSubstring, "lazy")
			So(out.String(), ShouldStartWith, "NAME")
		})
	})
}
