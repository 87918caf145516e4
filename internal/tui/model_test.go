package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/lifex/internal/config"
	"github.com/rgehrsitz/lifex/internal/domain"
)

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs to the model, running any returned command and feeding its
// message back in, the way the bubbletea runtime would
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next.(Model)
		if cmd == nil {
			continue
		}
		if out := cmd(); out != nil {
			if _, quit := out.(tea.QuitMsg); quit {
				continue
			}
			m = send(t, m, out)
		}
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel("")

	assert.Nil(t, m.Init(), "no profile file means nothing to load")
	assert.Equal(t, domain.DefaultProfile(), m.Baseline())
	assert.Equal(t, SceneBasics, m.CurrentScene())
	_, comparing := m.Comparison()
	assert.False(t, comparing)
	assert.Contains(t, m.View(), "Basic Information")
}

func TestNavigation(t *testing.T) {
	m := NewModel("")

	m = send(t, m, keyTab)
	assert.Equal(t, SceneLifestyle, m.CurrentScene())

	m = send(t, m, keyShiftTab, keyShiftTab)
	assert.Equal(t, SceneSuggestions, m.CurrentScene(), "shift+tab wraps around")

	m = send(t, m, runes("3"))
	assert.Equal(t, SceneResults, m.CurrentScene())

	m = send(t, m, runes("?"))
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "toggle compare")

	m = send(t, m, keyEsc)
	assert.Equal(t, SceneResults, m.CurrentScene())
}

func TestQuit(t *testing.T) {
	_, cmd := NewModel("").Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEditBasics(t *testing.T) {
	m := send(t, NewModel(""), keyRight, keyRight)
	assert.Equal(t, 32, m.Baseline().Age)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 42, m.Baseline().Age)

	m = send(t, m, keyDown, keyRight)
	assert.Equal(t, domain.SexFemale, m.Baseline().Sex)

	m = send(t, m, runes("3"))
	assert.Contains(t, m.View(), "86.1 years")
}

func TestEditLifestyle(t *testing.T) {
	m := send(t, NewModel(""), runes("2"))

	// never smoked is the last choice, so moving right is a no-op
	m = send(t, m, keyRight)
	assert.Equal(t, domain.SmokingNever, m.Baseline().Smoking)

	m = send(t, m, keyLeft)
	assert.Equal(t, domain.SmokingFormer, m.Baseline().Smoking)

	m = send(t, m, keyDown, keyDown, keyLeft)
	assert.Equal(t, domain.DietGood, m.Baseline().Diet)

	m = send(t, m, runes("3"))
	view := m.View()
	assert.Contains(t, view, "78.6 years")
	assert.Contains(t, view, "Impact by factor")
}

func TestComparisonMode(t *testing.T) {
	m := send(t, NewModel(""), runes("c"))

	cmp, comparing := m.Comparison()
	require.True(t, comparing)
	assert.Equal(t, m.Baseline(), cmp)

	// lifestyle edits go to the comparison profile
	m = send(t, m, runes("2"), keyDown, keyDown, keyLeft)
	cmp, _ = m.Comparison()
	assert.Equal(t, domain.DietGood, cmp.Diet)
	assert.Equal(t, domain.DietAverage, m.Baseline().Diet)
	assert.Contains(t, m.View(), "Comparison mode")

	// baseline edits rebase the comparison and keep its own choices
	m = send(t, m, runes("1"), keyRight)
	cmp, _ = m.Comparison()
	assert.Equal(t, 31, m.Baseline().Age)
	assert.Equal(t, 31, cmp.Age)
	assert.Equal(t, domain.DietGood, cmp.Diet)

	m = send(t, m, runes("3"))
	view := m.View()
	assert.Contains(t, view, "Comparison Mode")
	assert.Contains(t, view, "Positive Impact")
	assert.Contains(t, view, "Survival timeline")

	m = send(t, m, runes("c"))
	_, comparing = m.Comparison()
	assert.False(t, comparing)
	assert.NotContains(t, m.View(), "Comparison Mode")
}

func TestApplySuggestion(t *testing.T) {
	m := send(t, NewModel(""), runes("4"))
	assert.Contains(t, m.View(), "from 81.1 to 95.6 years")

	m = send(t, m, keyEnter)
	assert.Equal(t, domain.DietExcellent, m.Baseline().Diet)

	m = send(t, m, keyDown, keyUp, keyEnter)
	assert.Equal(t, domain.SocialStrong, m.Baseline().SocialConnections)
}

func TestReset(t *testing.T) {
	m := send(t, NewModel(""), keyRight, runes("2"), keyLeft, runes("c"), runes("r"))

	assert.Equal(t, domain.DefaultProfileFor(31, domain.SexMale), m.Baseline())
	_, comparing := m.Comparison()
	assert.False(t, comparing)
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Sam\nage: 40\nsex: female\nsmoking: current\ndiet: keto\n"), 0o644))

	m := NewModel(path)
	cmd := m.Init()
	require.NotNil(t, cmd)

	m = send(t, m, cmd())
	assert.Equal(t, 40, m.Baseline().Age)
	assert.Equal(t, domain.SmokingCurrent, m.Baseline().Smoking)

	view := m.View()
	assert.Contains(t, view, "Sam")
	assert.Contains(t, view, "warning:")
	assert.Contains(t, view, "keto")
}

func TestLoadProfile_Error(t *testing.T) {
	m := NewModel(filepath.Join(t.TempDir(), "missing.yaml"))
	m = send(t, m, m.Init()())

	assert.Contains(t, m.View(), "Error:")

	m = send(t, m, runes("2"))
	assert.Equal(t, SceneBasics, m.CurrentScene(), "keys are ignored while an error is shown")

	m = send(t, m, keyEsc)
	assert.NotContains(t, m.View(), "Error:")
}

func TestSaveProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, os.WriteFile(path, []byte("age: 50\n"), 0o644))

	m := NewModel(path)
	m = send(t, m, m.Init()(), runes("2"), keyLeft, keyCtrlS)
	assert.Contains(t, m.View(), "Saved to "+path)

	cfg, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Profile.Age)
	assert.Equal(t, domain.SmokingFormer, cfg.Profile.Smoking)
}

func TestWindowSize(t *testing.T) {
	m := send(t, NewModel(""), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
