package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// console prints status lines, colored when the destination is a terminal.
type console struct {
	out   io.Writer
	color bool
}

// newConsole returns a console for w. Color is enabled only when w is a
// terminal, so redirected output and test buffers stay plain.
func newConsole(w io.Writer) *console {
	return &console{out: w, color: isTerminal(w)}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// println writes one plain line.
func (c *console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// printf writes one plain line from a format with a single argument.
func (c *console) printf(format string, arg any) {
	fmt.Fprintf(c.out, format+"\n", arg)
}

// paint writes one line in the given attributes.
func (c *console) paint(line string, attrs ...color.Attribute) {
	p := color.New(attrs...)
	if c.color {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	fmt.Fprintln(c.out, p.Sprint(line))
}

// success writes a line in green.
func (c *console) success(line string) {
	c.paint(line, color.FgGreen, color.Bold)
}

// warn writes a line in yellow.
func (c *console) warn(line string) {
	c.paint(line, color.FgYellow)
}

// fail writes a line in red.
func (c *console) fail(line string) {
	c.paint(line, color.FgRed, color.Bold)
}

// heading writes a line in bold.
func (c *console) heading(line string) {
	c.paint(line, color.Bold)
}
