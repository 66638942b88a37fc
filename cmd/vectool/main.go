package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Exercises vector.Vector and reports its growth and lifetime behavior.").DefaultEnvars()
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").Enum("debug", "info", "warn", "error")

	getLogger := func() log.Logger {
		return newLogger(*logLevel, os.Stderr)
	}
	printer := &StdoutPrinter{}

	registerCommands(app, getLogger, printer)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(getLogger()).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}

func registerCommands(app *kingpin.Application, getLogger func() log.Logger, printer Printer) {
	grow := &GrowCommand{}
	grow.Register(app, getLogger, printer)

	scenario := &ScenarioCommand{}
	scenario.Register(app, getLogger, printer)

	metrics := &MetricsCommand{}
	metrics.Register(app, getLogger, printer)
}

func newLogger(lvl string, w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
}
