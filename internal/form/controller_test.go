package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/panel"
)

func mustOption(t *testing.T, cat *catalog.Catalog, f catalog.Field, value string) catalog.Option {
	t.Helper()
	opt, ok := cat.Lookup(f, value)
	require.True(t, ok, "%s has no option %q", f, value)
	return opt
}

func TestControllerStartsAtDefault(t *testing.T) {
	cat := catalog.Builtin()
	ctrl := NewController(cat, nil)

	assert.Equal(t, cat.Default(), ctrl.Draft())
}

func TestResetIsIdempotent(t *testing.T) {
	cat := catalog.Builtin()
	ctrl := NewController(cat, nil)

	ctrl.SetField(catalog.FieldFontColor, mustOption(t, cat, catalog.FieldFontColor, "purple"))
	ctrl.SetField(catalog.FieldContentWidth, mustOption(t, cat, catalog.FieldContentWidth, "narrow"))

	ctrl.Reset()
	once := ctrl.Draft()
	ctrl.Reset()

	assert.Equal(t, once, ctrl.Draft())
	assert.Equal(t, cat.Default(), ctrl.Draft())
}

func TestSetFieldIsolation(t *testing.T) {
	cat := catalog.Builtin()
	ctrl := NewController(cat, nil)
	before := ctrl.Draft()

	ctrl.SetField(catalog.FieldBackgroundColor, mustOption(t, cat, catalog.FieldBackgroundColor, "black"))

	after := ctrl.Draft()
	assert.Equal(t, "black", after.BackgroundColor.Value)
	assert.Equal(t, before.FontFamily, after.FontFamily)
	assert.Equal(t, before.FontSize, after.FontSize)
	assert.Equal(t, before.FontColor, after.FontColor)
	assert.Equal(t, before.ContentWidth, after.ContentWidth)
}

func TestSetFieldLastWriteWins(t *testing.T) {
	cat := catalog.Builtin()
	ctrl := NewController(cat, nil)

	ctrl.SetField(catalog.FieldFontSize, mustOption(t, cat, catalog.FieldFontSize, "S"))
	ctrl.SetField(catalog.FieldFontSize, mustOption(t, cat, catalog.FieldFontSize, "L"))

	assert.Equal(t, "L", ctrl.Draft().FontSize.Value)
}

func TestApplyPurity(t *testing.T) {
	cat := catalog.Builtin()
	var received []catalog.Configuration
	ctrl := NewController(cat, func(cfg catalog.Configuration) {
		received = append(received, cfg)
	})
	ctrl.SetField(catalog.FieldFontColor, mustOption(t, cat, catalog.FieldFontColor, "green"))

	notifications := 0
	ctrl.Subscribe(func(catalog.Configuration) { notifications++ })

	before := ctrl.Draft()
	ctrl.Apply()
	ctrl.Apply()

	require.Len(t, received, 2)
	assert.Equal(t, received[0], received[1])
	assert.Equal(t, before, received[0])
	assert.Equal(t, before, ctrl.Draft())
	assert.Equal(t, 0, notifications, "apply does not change the draft")
}

func TestApplySnapshotIsIndependentOfLaterEdits(t *testing.T) {
	cat := catalog.Builtin()
	var committed catalog.Configuration
	ctrl := NewController(cat, func(cfg catalog.Configuration) { committed = cfg })

	ctrl.Apply()
	ctrl.SetField(catalog.FieldFontSize, mustOption(t, cat, catalog.FieldFontSize, "L"))

	assert.Equal(t, "M", committed.FontSize.Value)
}

func TestApplyWithoutConsumer(t *testing.T) {
	ctrl := NewController(catalog.Builtin(), nil)
	assert.NotPanics(t, ctrl.Apply)
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	cat := catalog.Builtin()
	ctrl := NewController(cat, nil)

	var seen []string
	sub := ctrl.Subscribe(func(cfg catalog.Configuration) {
		seen = append(seen, cfg.FontSize.Value)
	})

	ctrl.SetField(catalog.FieldFontSize, mustOption(t, cat, catalog.FieldFontSize, "S"))
	ctrl.Dispatch(SetFontSize{Option: mustOption(t, cat, catalog.FieldFontSize, "L")})
	ctrl.Reset()
	sub.Close()
	ctrl.Reset()

	assert.Equal(t, []string{"S", "L", "M"}, seen)
}

// TestDraftSurvivesOutsideClose walks the open, edit, outside-click,
// reopen, apply sequence end to end.
func TestDraftSurvivesOutsideClose(t *testing.T) {
	cat := catalog.Builtin()
	require.Equal(t, "M", cat.Default().FontSize.Value)

	var received []catalog.Configuration
	ctrl := NewController(cat, func(cfg catalog.Configuration) {
		received = append(received, cfg)
	})

	doc := panel.NewDocument()
	region := &panel.Ref{}
	region.Set(panel.Rect{X: 50, Y: 0, Width: 30, Height: 20})
	p := panel.New(doc, region)
	defer p.Close()

	p.Toggle()
	ctrl.SetField(catalog.FieldFontSize, mustOption(t, cat, catalog.FieldFontSize, "L"))
	ctrl.SetField(catalog.FieldFontColor, mustOption(t, cat, catalog.FieldFontColor, "black"))

	doc.Dispatch(panel.PointerDown{X: 3, Y: 3})
	require.False(t, p.IsOpen())
	assert.Equal(t, "L", ctrl.Draft().FontSize.Value)
	assert.Equal(t, "black", ctrl.Draft().FontColor.Value)

	p.Toggle()
	ctrl.Apply()

	def := cat.Default()
	require.Len(t, received, 1)
	assert.Equal(t, catalog.Configuration{
		FontFamily:      def.FontFamily,
		FontSize:        mustOption(t, cat, catalog.FieldFontSize, "L"),
		FontColor:       mustOption(t, cat, catalog.FieldFontColor, "black"),
		BackgroundColor: def.BackgroundColor,
		ContentWidth:    def.ContentWidth,
	}, received[0])
	assert.True(t, p.IsOpen(), "apply leaves the panel open")
}
