package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

// Printer writes user-facing status messages. Color enablement is an
// explicit field rather than a process-wide toggle, so tests and callers
// control it directly. Quiet suppresses everything except Plain output.
type Printer struct {
	Out   io.Writer
	Color bool
	Quiet bool
}

// Success prints a green status line.
func (p *Printer) Success(msg string) { p.status(color.Green, msg) }

// Notice prints a yellow status line.
func (p *Printer) Notice(msg string) { p.status(color.Yellow, msg) }

// Heading prints a cyan section line.
func (p *Printer) Heading(msg string) { p.status(color.Cyan, msg) }

// Detail prints a yellow summary detail line.
func (p *Printer) Detail(msg string) { p.status(color.Yellow, msg) }

// Plain prints an uncolored line regardless of quiet mode. Cleaned text
// goes through here so it stays pipeable.
func (p *Printer) Plain(msg string) {
	fmt.Fprintln(p.Out, msg)
}

func (p *Printer) status(c color.Color, msg string) {
	if p.Quiet {
		return
	}
	if p.Color {
		fmt.Fprintln(p.Out, c.Sprint(msg))
		return
	}
	fmt.Fprintln(p.Out, msg)
}
