// Package command holds the segtree subcommands.
package command

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// loggerFrom returns the logger passed to subcommands.Execute.
func loggerFrom(args []any) logrus.FieldLogger {
	if len(args) > 0 {
		if log, ok := args[0].(logrus.FieldLogger); ok {
			return log
		}
	}
	return logrus.StandardLogger()
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
