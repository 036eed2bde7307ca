package commands

import (
	"github.com/charmbracelet/lipgloss"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	// Text is the headline of the error box
	Text        string
	Suggestions []string
	Help        string
	// ExitCode overrides the default exit code 1
	ExitCode int
	// Err is the underlying error, if any. It is shown below Text when its message adds something
	Err error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

// RichError renders the error with its help text and suggestions
func (e *CliError) RichError() string {
	help := e.Help
	if e.Err != nil && e.Err.Error() != e.Text {
		if help != "" {
			help += "\n"
		}
		help += "Cause: " + e.Err.Error()
	}
	rendered := ErrorBox(e.Text, help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}
