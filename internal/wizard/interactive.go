package wizard

import (
	"os"

	"golang.org/x/term"

	"github.com/tessro/cutline/internal/config"
)

// Interactive provides interactive fallback functionality.
type Interactive struct {
	enabled  bool
	terminal func() bool
	form     func(*ConfigAnswers) error
}

// NewInteractive creates a new interactive handler.
func NewInteractive() *Interactive {
	return &Interactive{
		enabled:  true,
		terminal: IsTerminal,
		form:     runConfigForm,
	}
}

// SetEnabled enables or disables interactive mode.
func (i *Interactive) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// IsTerminal returns true if stdin and stdout are terminals.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CanInteract returns true if interactive mode is available.
func (i *Interactive) CanInteract() bool {
	return i.enabled && i.terminal()
}

// PromptConfig asks for the main settings, starting from base. It returns
// base unchanged when interactive mode is unavailable.
func (i *Interactive) PromptConfig(base *config.Config) (*config.Config, error) {
	if !i.CanInteract() {
		return base, nil
	}
	answers := AnswersFrom(base)
	if err := i.form(answers); err != nil {
		return nil, err
	}
	return answers.Apply(base)
}
