// Package cli is the main entrypoint for segtree.
package cli

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/AlexWan0/go-segtree/internal/command"
)

var (
	logLevel  = flag.String("log-level", "info", "log level: debug, info, warning or error. Tree diagnostics are logged at debug.")
	logFormat = flag.String("log-format", "text", "log format: text or json.")
)

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid -log-level")
	}
	log.SetLevel(level)
	switch *logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.Fatalf("invalid -log-format %q", *logFormat)
	}

	subcmdCode := subcommands.Execute(context.Background(), log)
	os.Exit(int(subcmdCode))
}

// forEachCmd invokes the passed callback for each command supported by
// segtree.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")

	cb(new(command.Run), "")
	cb(new(command.Verify), "")
	cb(new(command.Algebras), "")
}
