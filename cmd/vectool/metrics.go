package main

import (
	"bytes"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/vecprom"
)

// MetricsCommand fills a vector and prints its Prometheus exposition.
type MetricsCommand struct {
	getLogger func() log.Logger
	printer   Printer

	name  string
	count int
}

// Register is used to register the command to a parent command.
func (c *MetricsCommand) Register(app *kingpin.Application, getLogger func() log.Logger, printer Printer) {
	c.getLogger = getLogger
	c.printer = printer

	cmd := app.Command("metrics", "Fill a vector and print its metrics in the Prometheus text format.").Action(c.metrics)
	cmd.Flag("name", "Value of the vector label.").Default("vectool").StringVar(&c.name)
	cmd.Flag("count", "Number of elements to append.").Default("100").IntVar(&c.count)
}

func (c *MetricsCommand) metrics(_ *kingpin.ParseContext) error {
	if c.count < 0 {
		return errors.Errorf("--count must not be negative, got %d", c.count)
	}

	v := vector.New[int]()
	defer v.Release()
	for i := range c.count {
		v.PushBack(i)
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(vecprom.NewCollector(c.name, v)); err != nil {
		return errors.Wrap(err, "register collector")
	}
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	level.Debug(c.getLogger()).Log("msg", "gathered metrics", "families", len(families))

	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return errors.Wrapf(err, "format %s", mf.GetName())
		}
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		c.printer.PrintLine(line)
	}
	return nil
}
