package printer

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// Success prints a confirmation in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ "+format, a...)
}

func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

func Warning(format string, a ...any) {
	yellow.Printf(format, a...)
}

// Heading prints a cyan section header.
func Heading(format string, a ...any) {
	cyan.Printf(format, a...)
}
