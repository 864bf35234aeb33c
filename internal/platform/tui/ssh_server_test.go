package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshko/arcadia/internal/core"
)

func sessionRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func pressKey(t *testing.T, m SessionModel, msg tea.KeyMsg) (SessionModel, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	next, ok := newModel.(SessionModel)
	require.True(t, ok, "Update must return a SessionModel")
	return next, cmd
}

// isQuitCmd reports whether a command would terminate the program.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionScoreboardKeepsSessionAlive(t *testing.T) {
	m := NewSessionModel(nil, sessionRuntime())

	// Tab from the menu opens the in-session scoreboard. The menu's own
	// quit command must not leak out, or the SSH session would end.
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.inScoreboard, "Tab must open the scoreboard")
	require.NotNil(t, m.scoreboard)
	assert.False(t, m.quitting)
	assert.False(t, isQuitCmd(cmd), "Opening the scoreboard must not end the session")

	// Esc returns to the menu, still without ending the session.
	m, cmd = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.inScoreboard, "Esc must return to the menu")
	assert.False(t, m.quitting)
	assert.False(t, isQuitCmd(cmd), "Leaving the scoreboard must not end the session")
}

func TestSessionScoreboardQuitEndsSession(t *testing.T) {
	m := NewSessionModel(nil, sessionRuntime())

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.inScoreboard)

	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.quitting, "Quit from the scoreboard must end the session")
	assert.True(t, isQuitCmd(cmd))
}

func TestSessionMenuQuit(t *testing.T) {
	m := NewSessionModel(nil, sessionRuntime())

	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, m.quitting)
	assert.True(t, isQuitCmd(cmd))
}
