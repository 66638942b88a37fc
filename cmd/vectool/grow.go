package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// GrowCommand appends integers to a vector and reports each reallocation.
type GrowCommand struct {
	getLogger func() log.Logger
	printer   Printer

	count   int
	reserve int
}

// Register is used to register the command to a parent command.
func (c *GrowCommand) Register(app *kingpin.Application, getLogger func() log.Logger, printer Printer) {
	c.getLogger = getLogger
	c.printer = printer

	cmd := app.Command("grow", "Append integers and report every reallocation.").Action(c.grow)
	cmd.Flag("count", "Number of elements to append.").Default("100").IntVar(&c.count)
	cmd.Flag("reserve", "Capacity to reserve before the first append.").Default("0").IntVar(&c.reserve)
}

func (c *GrowCommand) grow(_ *kingpin.ParseContext) error {
	if c.count < 0 {
		return errors.Errorf("--count must not be negative, got %d", c.count)
	}
	if c.reserve < 0 {
		return errors.Errorf("--reserve must not be negative, got %d", c.reserve)
	}
	logger := c.getLogger()

	v := vector.New[int]()
	defer v.Release()

	v.Reserve(c.reserve)
	for i := range c.count {
		before := v.Cap()
		v.PushBack(i)
		if v.Cap() == before {
			continue
		}
		level.Debug(logger).Log("msg", "reallocated", "len", v.Len(), "old_cap", before, "new_cap", v.Cap())
		c.printer.PrintLine(fmt.Sprintf("len=%d cap %d -> %d (%s)", v.Len(), before, v.Cap(), humanize.IBytes(uint64(v.CapacityBytes()))))
	}

	level.Info(logger).Log("msg", "grow finished", "len", v.Len(), "cap", v.Cap(), "reallocations", v.Reallocations())
	printMetrics(c.printer, v.Metrics())
	return nil
}

func printMetrics(p Printer, m vector.Metrics) {
	p.PrintLine(fmt.Sprintf("Length: %d", m.Len))
	p.PrintLine(fmt.Sprintf("Capacity: %d", m.Cap))
	p.PrintLine(fmt.Sprintf("Size in use: %s", humanize.IBytes(uint64(m.SizeInUse))))
	p.PrintLine(fmt.Sprintf("Capacity bytes: %s", humanize.IBytes(uint64(m.CapacityBytes))))
	p.PrintLine(fmt.Sprintf("Utilization: %.1f%%", m.Utilization*100))
	p.PrintLine(fmt.Sprintf("Reallocations: %d", m.Reallocations))
	p.PrintLine(fmt.Sprintf("Relocated by move: %d", m.MovedElements))
	p.PrintLine(fmt.Sprintf("Relocated by copy: %d", m.CopiedElements))
}
