// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

const (
	// Success represents a positive state.
	// Used for: containers present in a system, completed operations.
	Success = "✓"

	// Error represents a negative or missing state.
	// Used for: containers missing from a system, failed operations.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: unresolved filter columns, degraded comparisons.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"
)
