package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// Color functions - fatih/color disables itself when stdout is not a TTY
	headerColor  = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	stepColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintHeader prints the run banner.
func PrintHeader(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintStep prints the label of a long-running step.
func PrintStep(msg string) {
	_, _ = stepColor.Printf("  %s…\n", msg)
}

// PrintSuccess prints a success message with a checkmark.
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message.
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintDim prints secondary detail, such as a file path.
func PrintDim(msg string) {
	_, _ = dimColor.Printf("  %s\n", msg)
}
