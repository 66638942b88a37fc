package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// ScenarioCommand runs fixed sequences of vector operations and prints the
// state after every step.
type ScenarioCommand struct {
	getLogger func() log.Logger
	printer   Printer

	name string
}

var scenarios = []struct {
	name string
	run  func(p Printer) error
}{
	{"insert-erase", runInsertErase},
	{"reserve", runReserve},
	{"assign", runAssign},
}

// Register is used to register the command to a parent command.
func (c *ScenarioCommand) Register(app *kingpin.Application, getLogger func() log.Logger, printer Printer) {
	c.getLogger = getLogger
	c.printer = printer

	names := []string{"all"}
	for _, s := range scenarios {
		names = append(names, s.name)
	}

	cmd := app.Command("scenario", "Run a reference sequence of operations.").Action(c.run)
	cmd.Flag("name", "Scenario to run.").Default("all").EnumVar(&c.name, names...)
}

func (c *ScenarioCommand) run(_ *kingpin.ParseContext) error {
	logger := c.getLogger()
	for _, s := range scenarios {
		if c.name != "all" && c.name != s.name {
			continue
		}
		level.Info(logger).Log("msg", "running scenario", "name", s.name)
		c.printer.PrintLine("== " + s.name)
		if err := s.run(c.printer); err != nil {
			return errors.Wrapf(err, "scenario %s", s.name)
		}
	}
	return nil
}

func printState[T any](p Printer, step string, v *vector.Vector[T]) {
	p.PrintLine(fmt.Sprintf("%s: %v len=%d cap=%d", step, v.Slice(), v.Len(), v.Cap()))
}

func runInsertErase(p Printer) error {
	v := vector.New[int]()
	defer v.Release()

	for i := 1; i <= 3; i++ {
		v.PushBack(i)
	}
	printState(p, "append 1,2,3", v)

	v.Insert(1, 10)
	printState(p, "insert 10 at 1", v)

	v.Erase(0)
	printState(p, "erase 0", v)

	v.PopBack()
	printState(p, "pop back", v)
	return nil
}

func runReserve(p Printer) error {
	v := vector.NewSized[int](0)
	defer v.Release()

	v.Reserve(5)
	printState(p, "reserve 5", v)

	reallocs := v.Reallocations()
	for i := range 4 {
		v.PushBack(i)
	}
	printState(p, "append 4", v)
	if v.Reallocations() != reallocs {
		return errors.Errorf("appending within reserved capacity reallocated %d times", v.Reallocations()-reallocs)
	}
	return nil
}

// counted is an element whose copies draw from a shared budget. Copying with
// an exhausted budget panics.
type counted struct {
	n      int
	budget *int
}

func (c counted) Clone() counted {
	if *c.budget == 0 {
		panic("copy budget exhausted")
	}
	if *c.budget > 0 {
		*c.budget--
	}
	return c
}

func (c counted) String() string {
	return fmt.Sprint(c.n)
}

func runAssign(p Printer) error {
	budget := -1

	dst := vector.New[counted]()
	defer dst.Release()
	dst.Reserve(3)
	for i := 1; i <= 3; i++ {
		dst.PushBack(counted{n: i, budget: &budget})
	}
	printState(p, "destination", dst)

	src := vector.New[counted]()
	defer src.Release()
	for i := range 10 {
		src.PushBack(counted{n: i, budget: &budget})
	}

	budget = 4
	if err := tryAssign(dst, src); err != nil {
		p.PrintLine(fmt.Sprintf("assign failed: %v", err))
	}
	printState(p, "after failed assign", dst)
	if dst.Len() != 3 {
		return errors.Errorf("failed assign changed the destination length to %d", dst.Len())
	}

	budget = -1
	if err := tryAssign(dst, src); err != nil {
		return err
	}
	printState(p, "after assign", dst)
	return nil
}

// tryAssign converts a panic raised while copying elements into an error.
func tryAssign[T any](dst, src *vector.Vector[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()
	dst.Assign(src)
	return nil
}
