package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	t.Cleanup(func() { runFormFunc = orig })
	runFormFunc = fn
}

func TestMultiSelect_RequiresTerminal(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error {
		t.Fatalf("form must not run without a terminal")
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return false }}
	var selected []string
	err := ui.MultiSelect("pick", []Option{{Label: "gcc", Value: "gcc"}}, &selected)
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestMultiSelect_RunsForm(t *testing.T) {
	ran := false
	stubRunForm(t, func(form *huh.Form) error {
		ran = true
		require.NotNil(t, form)
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}
	selected := []string{"gcc"}
	err := ui.MultiSelect("pick", []Option{{Label: "gcc", Value: "gcc", Selected: true}, {Label: "llvm", Value: "llvm"}}, &selected)
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestMultiSelect_AbortMapsToCanceled(t *testing.T) {
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var selected []string
	assert.ErrorIs(t, ui.MultiSelect("pick", nil, &selected), ErrCanceled)
}

func TestRunForm_PropagatesErrors(t *testing.T) {
	want := errors.New("tty gone")
	stubRunForm(t, func(*huh.Form) error { return want })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	var selected []string
	assert.ErrorIs(t, ui.MultiSelect("pick", nil, &selected), want)
}

func TestInterruptFilter(t *testing.T) {
	assert.Equal(t, tea.QuitMsg{}, interruptFilter(nil, tea.InterruptMsg{}))
	msg := tea.KeyMsg{Type: tea.KeyEnter}
	assert.Equal(t, msg, interruptFilter(nil, msg))
}

func TestKeyMap(t *testing.T) {
	km := keyMap()
	assert.ElementsMatch(t, []string{"ctrl+c", "esc"}, km.Quit.Keys())
	assert.False(t, km.MultiSelect.Filter.Enabled())
}

func TestNewHuhUI_NoTerminalInTests(t *testing.T) {
	ui := NewHuhUI()
	require.NotNil(t, ui.isTerminal)
	if isInteractive() {
		t.Skip("running attached to a terminal")
	}
	var selected []string
	assert.ErrorIs(t, ui.MultiSelect("pick", nil, &selected), ErrNotInteractive)
}
