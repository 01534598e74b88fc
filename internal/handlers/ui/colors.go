package ui

import "github.com/fatih/color"

var (
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	PromptColor = color.New(color.FgMagenta).SprintFunc()
)

// DisableColors turns off ANSI colors for every color function in this package.
func DisableColors() {
	color.NoColor = true
}
