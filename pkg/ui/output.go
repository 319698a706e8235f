package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	// Color functions
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	blue   = color.New(color.FgBlue).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Success prints a success message
func Success(message string) {
	fmt.Printf("%s %s\n", green("✅"), message)
}

// Error prints an error message
func Error(message string) {
	fmt.Printf("%s %s\n", red("❌"), message)
}

// Warning prints a warning message
func Warning(message string) {
	fmt.Printf("%s %s\n", yellow("⚠️ "), message)
}

// Info prints an info message
func Info(message string) {
	fmt.Printf("%s %s\n", blue("ℹ️ "), message)
}

// Section prints a section header
func Section(title string) {
	fmt.Printf("\n%s %s\n\n", cyan("»"), bold(title))
}

// PrintStatusLine prints a status line with label and value
func PrintStatusLine(label, value string) {
	fmt.Printf("  %s %s\n", cyan(label+":"), value)
}

// Bold returns a bold-formatted string
func Bold(text string) string {
	return bold(text)
}
