// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by commands and the interactive menu.
const (
	// Success marks a completed mutation or a saved report.
	Success = "✓"

	// Error marks a rejected operation.
	Error = "✗"

	// Warning marks an operation that was applied but not persisted.
	Warning = "!"

	// Info marks neutral messages such as empty results.
	Info = "i"

	// Prompt precedes a field request in the menu.
	Prompt = ">"

	// Bullet prefixes list items in plain text output.
	Bullet = "-"

	// Seasonal flags limited-edition desserts in tables.
	Seasonal = "*"

	// Bar is the unit used to draw histogram bars.
	Bar = "#"
)
