// Package ui holds the [lipgloss] palette used for human-readable CLI output.
//
// Colors degrade to plain text when stdout is not a terminal.
package ui
