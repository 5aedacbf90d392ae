package ui

import (
	"io"

	"github.com/pterm/pterm"
)

// Confirmer asks yes/no questions.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// Picker asks the user to choose one of options.
type Picker interface {
	Pick(title string, options []string) (string, error)
}

// AutoConfirm answers every question with Answer without asking.
type AutoConfirm struct {
	Answer bool
}

// Confirm implements Confirmer
func (a AutoConfirm) Confirm(string) (bool, error) {
	return a.Answer, nil
}

// Prompter implements Confirmer and Picker with pterm's interactive
// printers.
type Prompter struct{}

// NewPrompter creates a prompter drawing on out. Commands whose stdout is
// captured by the shell integration must pass stderr here.
func NewPrompter(out io.Writer) *Prompter {
	pterm.SetDefaultOutput(out)
	return &Prompter{}
}

// Confirm implements Confirmer. The default answer is no.
func (p *Prompter) Confirm(message string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(false).
		Show(message)
}

// Pick implements Picker
func (p *Prompter) Pick(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(15).
		Show(title)
}
