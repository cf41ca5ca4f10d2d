package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorSetValue(t *testing.T) {
	e := NewEditor("[]")
	assert.Equal(t, "[]", e.Value())
	assert.False(t, e.Truncated())

	e.SetValue("[\n  1\n]")
	assert.Equal(t, "[\n  1\n]", e.Value())
	assert.False(t, e.Truncated())
}

func TestEditorReportsChanges(t *testing.T) {
	e := NewEditor("[]")
	e.Focus()

	e, _, changed := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, changed)
	assert.Equal(t, "[]x", e.Value())

	_, _, changed = e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, changed)
}

func TestEditorLongTextIsReadOnly(t *testing.T) {
	text := strings.Repeat("1,\n", 12000) + "1"
	e := NewEditor("[]")
	e.Focus()
	e.SetValue(text)

	assert.Equal(t, e.Value() != text, e.Truncated())
	if !e.Truncated() {
		t.Skip("text area held the whole text")
	}

	shown := e.Value()
	e, _, changed := e.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, changed)
	assert.Equal(t, shown, e.Value())

	e.SetValue("[]")
	require.False(t, e.Truncated())
}

func TestTruncatedEditorKeepsSelectionText(t *testing.T) {
	m, _ := testModel(t)
	m = send(t, m, key("tab"))
	m.editor.truncated = true
	before := m.Text()

	m = typeText(t, m, "x")

	assert.Equal(t, before, m.Text())
	assert.Contains(t, m.View(), "too long to edit")
}
