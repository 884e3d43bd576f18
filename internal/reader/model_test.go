package reader

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/readerstyle/internal/catalog"
)

func newTestModel(t *testing.T, applied *[]catalog.Configuration) *Model {
	t.Helper()

	m := New(Options{
		OnApply: func(cfg catalog.Configuration) {
			if applied != nil {
				*applied = append(*applied, cfg)
			}
		},
	})
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return m
}

func press(m *Model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func sendKey(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func sendRunes(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func clickTrigger(m *Model) {
	press(m, m.layout.trigger.X, m.layout.trigger.Y)
}

func clickOutside(m *Model) {
	press(m, m.layout.body.X+m.layout.body.Width/2, m.layout.body.Y+2)
}

func findTarget(t *testing.T, m *Model, kind targetKind, match func(target) bool) target {
	t.Helper()
	for _, tg := range m.layout.targets {
		if tg.kind == kind && (match == nil || match(tg)) {
			return tg
		}
	}
	require.FailNow(t, "target not found", "kind %d", kind)
	return target{}
}

func click(t *testing.T, m *Model, kind targetKind, match func(target) bool) {
	t.Helper()
	tg := findTarget(t, m, kind, match)
	press(m, tg.rect.X, tg.rect.Y)
}

func TestNewStartsClosedWithDefaults(t *testing.T) {
	m := newTestModel(t, nil)
	def := catalog.Builtin().Default()

	assert.False(t, m.IsOpen())
	assert.Equal(t, def, m.Draft())
	assert.Equal(t, def, m.Committed())
	assert.Equal(t, 0, m.Listeners())
}

func TestToggleKeyAttachesAndDetaches(t *testing.T) {
	m := newTestModel(t, nil)

	sendKey(m, tea.KeyTab)
	assert.True(t, m.IsOpen())
	assert.Equal(t, 1, m.Listeners())

	sendKey(m, tea.KeyCtrlO)
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.Listeners())
}

func TestTriggerClickTogglesOnce(t *testing.T) {
	m := newTestModel(t, nil)

	clickTrigger(m)
	require.True(t, m.IsOpen())

	// The trigger is inside the detector's region, so this is a plain toggle.
	clickTrigger(m)
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.Listeners())
}

func TestOutsideClickCloses(t *testing.T) {
	m := newTestModel(t, nil)
	sendKey(m, tea.KeyTab)

	clickOutside(m)
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.Listeners())
}

func TestClickInsidePanelKeepsItOpen(t *testing.T) {
	m := newTestModel(t, nil)
	sendKey(m, tea.KeyTab)

	p := m.layout.panel
	press(m, p.X+p.Width-1, p.Y+p.Height-1)
	assert.True(t, m.IsOpen())
}

func TestEscapeCloses(t *testing.T) {
	m := newTestModel(t, nil)
	sendKey(m, tea.KeyTab)

	sendKey(m, tea.KeyEsc)
	assert.False(t, m.IsOpen())
	assert.Equal(t, 0, m.Listeners())

	// Escape while closed does nothing.
	sendKey(m, tea.KeyEsc)
	assert.False(t, m.IsOpen())
}

func TestRepeatedCyclesDoNotAccumulateListeners(t *testing.T) {
	m := newTestModel(t, nil)

	for i := 0; i < 10; i++ {
		sendKey(m, tea.KeyTab)
		sendKey(m, tea.KeyEsc)
	}
	assert.Equal(t, 0, m.Listeners())
}

func TestKeysEditDraftOnly(t *testing.T) {
	m := newTestModel(t, nil)
	sendKey(m, tea.KeyTab)

	// Cursor starts on the font family row.
	sendKey(m, tea.KeyRight)
	assert.Equal(t, "ubuntu", m.Draft().FontFamily.Value)
	assert.Equal(t, "open-sans", m.Committed().FontFamily.Value)

	sendKey(m, tea.KeyLeft)
	sendKey(m, tea.KeyLeft)
	assert.Equal(t, "merriweather", m.Draft().FontFamily.Value)

	sendKey(m, tea.KeyDown)
	sendKey(m, tea.KeyRight)
	assert.Equal(t, "L", m.Draft().FontSize.Value)
	assert.Equal(t, "merriweather", m.Draft().FontFamily.Value)
}

func TestApplyKeyCommits(t *testing.T) {
	var applied []catalog.Configuration
	m := newTestModel(t, &applied)
	sendKey(m, tea.KeyTab)

	sendKey(m, tea.KeyDown)
	sendKey(m, tea.KeyDown)
	sendKey(m, tea.KeyRight)
	draft := m.Draft()
	require.Equal(t, "white", draft.FontColor.Value)

	sendRunes(m, "a")
	require.Len(t, applied, 1)
	assert.Equal(t, draft, applied[0])
	assert.Equal(t, draft, m.Committed())
	assert.Equal(t, draft, m.Draft())
	assert.True(t, m.IsOpen(), "apply leaves the panel open")
}

func TestResetKey(t *testing.T) {
	m := newTestModel(t, nil)
	sendKey(m, tea.KeyTab)
	sendKey(m, tea.KeyRight)

	sendRunes(m, "r")
	assert.Equal(t, catalog.Builtin().Default(), m.Draft())
}

func TestEnterActivatesButtons(t *testing.T) {
	var applied []catalog.Configuration
	m := newTestModel(t, &applied)
	sendKey(m, tea.KeyTab)

	sendKey(m, tea.KeyEnter)
	assert.Equal(t, "ubuntu", m.Draft().FontFamily.Value)

	// Up from the first row wraps to Apply.
	sendKey(m, tea.KeyUp)
	sendKey(m, tea.KeyEnter)
	require.Len(t, applied, 1)
	assert.Equal(t, "ubuntu", applied[0].FontFamily.Value)

	sendKey(m, tea.KeyUp)
	sendKey(m, tea.KeyEnter)
	assert.Equal(t, "open-sans", m.Draft().FontFamily.Value)
	assert.Equal(t, "ubuntu", m.Committed().FontFamily.Value, "reset does not touch the committed configuration")
}

func TestMouseEditsDraft(t *testing.T) {
	var applied []catalog.Configuration
	m := newTestModel(t, &applied)
	clickTrigger(m)

	click(t, m, targetOption, func(tg target) bool { return tg.option.Value == "S" })
	assert.Equal(t, "S", m.Draft().FontSize.Value)

	isColor := func(tg target) bool { return tg.field == catalog.FieldBackgroundColor }
	click(t, m, targetNext, isColor)
	assert.Equal(t, "black", m.Draft().BackgroundColor.Value)
	click(t, m, targetPrev, isColor)
	click(t, m, targetPrev, isColor)
	assert.Equal(t, "purple", m.Draft().BackgroundColor.Value)

	click(t, m, targetApply, nil)
	require.Len(t, applied, 1)
	assert.Equal(t, "S", applied[0].FontSize.Value)
	assert.Equal(t, "purple", applied[0].BackgroundColor.Value)

	click(t, m, targetReset, nil)
	assert.Equal(t, catalog.Builtin().Default(), m.Draft())
	assert.True(t, m.IsOpen())
}

func TestDraftSurvivesCloseAndReopen(t *testing.T) {
	var applied []catalog.Configuration
	m := newTestModel(t, &applied)
	def := catalog.Builtin().Default()
	require.Equal(t, "M", m.Draft().FontSize.Value)

	clickTrigger(m)
	click(t, m, targetOption, func(tg target) bool { return tg.option.Value == "L" })

	isFontColor := func(tg target) bool { return tg.field == catalog.FieldFontColor }
	click(t, m, targetNext, isFontColor)
	click(t, m, targetPrev, isFontColor)
	require.Equal(t, "black", m.Draft().FontColor.Value)

	clickOutside(m)
	require.False(t, m.IsOpen())
	assert.Empty(t, applied)

	clickTrigger(m)
	require.True(t, m.IsOpen())
	assert.Equal(t, "L", m.Draft().FontSize.Value)

	click(t, m, targetApply, nil)
	require.Len(t, applied, 1)

	want := def
	want.FontSize, _ = catalog.Builtin().Lookup(catalog.FieldFontSize, "L")
	assert.Equal(t, want, applied[0])
}

func TestClosedKeysScrollAndIgnoreEdits(t *testing.T) {
	m := newTestModel(t, nil)

	sendKey(m, tea.KeyRight)
	sendRunes(m, "r")
	sendRunes(m, "a")
	assert.Equal(t, catalog.Builtin().Default(), m.Draft())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	cmd := sendRunes(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	cmd = sendKey(m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCloseReleasesListener(t *testing.T) {
	m := New(Options{})
	sendKey(m, tea.KeyTab)
	require.Equal(t, 1, m.Listeners())

	m.Close()
	assert.Equal(t, 0, m.Listeners())
	m.Close()
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil)

	closed := m.View()
	assert.Contains(t, closed, "▶ Settings")
	assert.NotContains(t, closed, PanelTitle)
	assert.Contains(t, closed, SampleArticle.Title)

	sendKey(m, tea.KeyTab)
	open := m.View()
	assert.Contains(t, open, "◀ Settings")
	assert.Contains(t, open, PanelTitle)
	for _, f := range catalog.Fields {
		assert.Contains(t, open, f.Title())
	}
	assert.Contains(t, open, ResetLabel)
	assert.Contains(t, open, ApplyLabel)
	assert.NotContains(t, open, "modified")

	sendKey(m, tea.KeyRight)
	assert.Contains(t, m.View(), "modified")
}
