package main

import "fmt"

// Printer receives the command output, one line at a time.
type Printer interface {
	PrintLine(line string)
}

// StdoutPrinter writes lines to standard output.
type StdoutPrinter struct{}

func (p *StdoutPrinter) PrintLine(line string) {
	fmt.Println(line)
}

// BufferedPrinter keeps lines in memory.
type BufferedPrinter struct {
	Lines []string
}

func (p *BufferedPrinter) PrintLine(line string) {
	p.Lines = append(p.Lines, line)
}

func (p *BufferedPrinter) Reset() {
	p.Lines = nil
}
