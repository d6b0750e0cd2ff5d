package seedinput

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blendrand/internal/blend"
)

// ErrPromptCancelled is returned when the user aborts the interactive prompt.
var ErrPromptCancelled = errors.New("seed prompt cancelled")

type promptModel struct {
	input     textinput.Model
	done      bool
	cancelled bool
}

func newPromptModel() promptModel {
	ti := textinput.New()
	ti.Prompt = PromptText
	ti.Placeholder = "clock"
	ti.CharLimit = 20
	ti.Focus()
	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.input.View() + "\n"
}

// Prompt asks for a seed on an interactive terminal.
func Prompt(ctx context.Context, in io.Reader, out io.Writer) (blend.Seed, error) {
	p := tea.NewProgram(newPromptModel(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return blend.NoSeed, fmt.Errorf("failed to run seed prompt: %w", err)
	}

	m := final.(promptModel)
	if m.cancelled {
		return blend.NoSeed, ErrPromptCancelled
	}
	return Parse(m.input.Value())
}
