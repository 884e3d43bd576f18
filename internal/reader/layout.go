package reader

import (
	"github.com/mattn/go-runewidth"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/panel"
)

// Panel geometry
const (
	cursorWidth  = 2 // "→ " in front of the focused row
	labelWidth   = 18
	radioGap     = 2
	buttonGap    = 2
	panelChromeX = 2 // border + padding on each side
	panelChromeY = 1 // border above and below
	panelGap     = 1 // blank column between panel and article
)

// Panel labels
const (
	PanelTitle   = "Set parameters"
	ResetLabel   = "[ Reset ]"
	ApplyLabel   = "[ Apply ]"
	TriggerLabel = "Settings"
)

// Panel content lines, relative to the panel's inner origin
const (
	titleLine      = 0
	firstFieldLine = 2
)

// radioFields are rendered as an inline radio group; every other field is a
// select cycled with ◀ ▶.
var radioFields = map[catalog.Field]bool{
	catalog.FieldFontSize: true,
}

// separatorBefore marks the field that starts the second group of rows.
const separatorBefore = catalog.FieldBackgroundColor

type targetKind int

const (
	targetFocus targetKind = iota
	targetPrev
	targetNext
	targetOption
	targetReset
	targetApply
)

// target is a clickable cell range inside the panel.
type target struct {
	rect   panel.Rect
	kind   targetKind
	item   int
	field  catalog.Field
	option catalog.Option
}

// layout places every element on screen for one frame.
type layout struct {
	width, height int

	trigger panel.Rect
	panel   panel.Rect // empty while closed
	body    panel.Rect

	// fieldLines holds the panel content line of each field row.
	fieldLines  map[catalog.Field]int
	buttonsLine int
	innerWidth  int

	targets []target
}

// Focusable items in the panel: one per field, then the two buttons.
func itemCount() int { return len(catalog.Fields) + 2 }

func resetItem() int { return len(catalog.Fields) }

func applyItem() int { return len(catalog.Fields) + 1 }

func fieldItem(i int) bool { return i >= 0 && i < len(catalog.Fields) }

// triggerText is the trigger control as drawn; the arrow points the way the
// panel will move.
func triggerText(open bool) string {
	if open {
		return "◀ " + TriggerLabel
	}
	return "▶ " + TriggerLabel
}

func selectText(opt catalog.Option) string {
	return "◀ " + opt.Label + " ▶"
}

func radioText(opt catalog.Option, selected bool) string {
	if selected {
		return "(•) " + opt.Label
	}
	return "( ) " + opt.Label
}

// buildLayout computes the frame for a width×height terminal. Field rows
// size to the draft values and the catalog's options.
func buildLayout(width, height int, open bool, cat *catalog.Catalog, draft catalog.Configuration) layout {
	l := layout{
		width:      width,
		height:     height,
		trigger:    panel.Rect{X: 0, Y: 0, Width: runewidth.StringWidth(triggerText(open)), Height: 1},
		fieldLines: make(map[catalog.Field]int, len(catalog.Fields)),
	}

	line := firstFieldLine
	inner := runewidth.StringWidth(PanelTitle)
	for _, f := range catalog.Fields {
		if f == separatorBefore {
			line++
		}
		l.fieldLines[f] = line
		line++

		if w := cursorWidth + labelWidth + fieldValueWidth(cat, draft, f); w > inner {
			inner = w
		}
	}
	l.buttonsLine = line + 1
	if w := runewidth.StringWidth(ResetLabel) + buttonGap + runewidth.StringWidth(ApplyLabel); w > inner {
		inner = w
	}
	l.innerWidth = inner

	bodyY := 1
	bodyHeight := height - 2 // header and footer
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	bodyX := 0
	if open {
		l.panel = panel.Rect{
			X:      0,
			Y:      bodyY,
			Width:  inner + 2*panelChromeX,
			Height: l.buttonsLine + 1 + 2*panelChromeY,
		}
		bodyX = l.panel.Width + panelGap
		l.targets = panelTargets(l, cat, draft)
	}

	bodyWidth := width - bodyX
	if bodyWidth < 1 {
		bodyWidth = 1
	}
	l.body = panel.Rect{X: bodyX, Y: bodyY, Width: bodyWidth, Height: bodyHeight}
	return l
}

func fieldValueWidth(cat *catalog.Catalog, draft catalog.Configuration, f catalog.Field) int {
	if !radioFields[f] {
		return runewidth.StringWidth(selectText(draft.Get(f)))
	}
	w := 0
	for i, opt := range cat.Options(f) {
		if i > 0 {
			w += radioGap
		}
		w += runewidth.StringWidth(radioText(opt, false))
	}
	return w
}

// origin returns the screen cell of the panel's first content character.
func (l layout) origin() (int, int) {
	return l.panel.X + panelChromeX, l.panel.Y + panelChromeY
}

func panelTargets(l layout, cat *catalog.Catalog, draft catalog.Configuration) []target {
	x0, y0 := l.origin()
	var targets []target

	for i, f := range catalog.Fields {
		y := y0 + l.fieldLines[f]
		targets = append(targets, target{
			rect:  panel.Rect{X: x0, Y: y, Width: cursorWidth + labelWidth, Height: 1},
			kind:  targetFocus,
			item:  i,
			field: f,
		})

		x := x0 + cursorWidth + labelWidth
		if radioFields[f] {
			for _, opt := range cat.Options(f) {
				w := runewidth.StringWidth(radioText(opt, false))
				targets = append(targets, target{
					rect:   panel.Rect{X: x, Y: y, Width: w, Height: 1},
					kind:   targetOption,
					item:   i,
					field:  f,
					option: opt,
				})
				x += w + radioGap
			}
			continue
		}

		// "◀ " steps back; the label and " ▶" step forward.
		w := runewidth.StringWidth(selectText(draft.Get(f)))
		targets = append(targets,
			target{rect: panel.Rect{X: x, Y: y, Width: 2, Height: 1}, kind: targetPrev, item: i, field: f},
			target{rect: panel.Rect{X: x + 2, Y: y, Width: w - 2, Height: 1}, kind: targetNext, item: i, field: f},
		)
	}

	y := y0 + l.buttonsLine
	resetW := runewidth.StringWidth(ResetLabel)
	targets = append(targets,
		target{rect: panel.Rect{X: x0, Y: y, Width: resetW, Height: 1}, kind: targetReset, item: resetItem()},
		target{
			rect: panel.Rect{X: x0 + resetW + buttonGap, Y: y, Width: runewidth.StringWidth(ApplyLabel), Height: 1},
			kind: targetApply,
			item: applyItem(),
		},
	)
	return targets
}

// hit returns the panel target under cell (x, y).
func (l layout) hit(x, y int) (target, bool) {
	for _, t := range l.targets {
		if t.rect.Contains(x, y) {
			return t, true
		}
	}
	return target{}, false
}
