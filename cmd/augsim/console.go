package main

import (
	"io"

	"github.com/fatih/color"
)

// console prints player-facing notices. It serves as the installer's
// notifier and navigator.
type console struct {
	w       io.Writer
	notice  *color.Color
	home    *color.Color
	success *color.Color
	failure *color.Color
}

func newConsole(w io.Writer) *console {
	return &console{
		w:       w,
		notice:  color.New(color.FgCyan),
		home:    color.New(color.FgMagenta, color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
	}
}

func (c *console) Notify(msg string) {
	c.notice.Fprintln(c.w, msg)
}

func (c *console) ToHome() {
	c.home.Fprintln(c.w, "» home")
}

func (c *console) Success(msg string) {
	c.success.Fprintln(c.w, "✓ "+msg)
}

func (c *console) Error(msg string) {
	c.failure.Fprintln(c.w, "✗ "+msg)
}
