package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/readerstyle/internal/catalog"
)

func TestBuildLayoutClosed(t *testing.T) {
	cat := catalog.Builtin()
	l := buildLayout(100, 30, false, cat, cat.Default())

	assert.True(t, l.panel.Empty())
	assert.Empty(t, l.targets)
	assert.Equal(t, 0, l.body.X)
	assert.Equal(t, 100, l.body.Width)
	assert.Equal(t, 28, l.body.Height)
	assert.True(t, l.trigger.Contains(0, 0))
}

func TestBuildLayoutOpen(t *testing.T) {
	cat := catalog.Builtin()
	l := buildLayout(120, 30, true, cat, cat.Default())

	require.False(t, l.panel.Empty())
	assert.Equal(t, l.panel.Width+panelGap, l.body.X)
	assert.Equal(t, 120-l.body.X, l.body.Width)
	assert.False(t, l.panel.Contains(l.body.X, l.body.Y), "panel and body must not overlap")

	// One line per field, a separator, a blank line and the buttons.
	assert.Equal(t, firstFieldLine+len(catalog.Fields)+1+1, l.buttonsLine)
	assert.Equal(t, l.fieldLines[catalog.FieldFontColor]+2, l.fieldLines[catalog.FieldBackgroundColor])
}

func TestLayoutTargetsInsidePanel(t *testing.T) {
	cat := catalog.Builtin()
	l := buildLayout(120, 30, true, cat, cat.Default())

	for _, tg := range l.targets {
		r := tg.rect
		assert.True(t, l.panel.Contains(r.X, r.Y), "target %+v", tg)
		assert.True(t, l.panel.Contains(r.X+r.Width-1, r.Y+r.Height-1), "target %+v", tg)
	}
}

func TestLayoutHit(t *testing.T) {
	cat := catalog.Builtin()
	l := buildLayout(120, 30, true, cat, cat.Default())

	count := map[targetKind]int{}
	for _, tg := range l.targets {
		got, ok := l.hit(tg.rect.X, tg.rect.Y)
		require.True(t, ok)
		assert.Equal(t, tg.kind, got.kind)
		count[tg.kind]++
	}

	assert.Equal(t, len(catalog.Fields), count[targetFocus])
	assert.Equal(t, len(cat.Options(catalog.FieldFontSize)), count[targetOption])
	assert.Equal(t, len(catalog.Fields)-1, count[targetPrev])
	assert.Equal(t, 1, count[targetReset])
	assert.Equal(t, 1, count[targetApply])

	_, ok := l.hit(l.body.X+1, l.body.Y+1)
	assert.False(t, ok)
}

func TestTriggerTextReflectsState(t *testing.T) {
	assert.Contains(t, triggerText(false), "▶")
	assert.Contains(t, triggerText(true), "◀")
}
