// Package ui renders the interactive topic prompts.
package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/conn-castle/topic-manager/internal/messages"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New(messages.SelectCanceled)

// ErrNotInteractive is returned when a prompt is requested without a terminal.
var ErrNotInteractive = errors.New(messages.SelectRequiresTerminal)

// Option is one selectable entry.
type Option struct {
	Label    string
	Value    string
	Selected bool
}

// UI defines the interaction methods.
type UI interface {
	MultiSelect(title string, options []Option, selected *[]string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI that requires an interactive terminal.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: isInteractive}
}

// isInteractive reports whether prompts can be shown: input comes from stdin and the
// form renders on stderr, so both must be terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = isInteractive
	}
	if checker() {
		return nil
	}
	return ErrNotInteractive
}

// keyMap makes Esc abort like Ctrl+C; topic lists are short so filtering is disabled.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.MultiSelect.Filter.SetEnabled(false)
	return km
}

// interruptFilter turns an interrupt into a quit so the renderer clears the form.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCanceled
	}
	return err
}

// MultiSelect renders a multi-choice prompt. Options marked Selected start checked.
func (ui *HuhUI) MultiSelect(title string, options []Option, selected *[]string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value).Selected(o.Selected)
	}
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Filterable(false).
				Options(opts...).
				Value(selected),
		),
	))
}
