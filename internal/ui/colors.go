package ui

import (
	"os"

	"github.com/fatih/color"
)

// fgDefault resets the foreground to the terminal's default colour.
const fgDefault color.Attribute = 39

func init() {
	// CI logs are captured, not rendered.
	if os.Getenv("CI") == "true" {
		color.NoColor = true
	}
}

func wrap(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)
	return func(s string) string {
		return c.Sprint(s)
	}
}

// Text styles. Each returns s wrapped in the matching ANSI sequence, or s
// unchanged when colour output is disabled.
var (
	Bold          = wrap(color.Bold)
	Dim           = wrap(color.Faint)
	Italic        = wrap(color.Italic)
	Underline     = wrap(color.Underline)
	Strikethrough = wrap(color.CrossedOut)
)

// Foreground colours.
var (
	Default = wrap(fgDefault)
	Black   = wrap(color.FgBlack)
	Red     = wrap(color.FgRed)
	Green   = wrap(color.FgGreen)
	Yellow  = wrap(color.FgYellow)
	Blue    = wrap(color.FgBlue)
	Magenta = wrap(color.FgMagenta)
	Purple  = Magenta
	Cyan    = wrap(color.FgCyan)
	White   = wrap(color.FgWhite)
	Gray    = wrap(color.FgHiBlack)
)
