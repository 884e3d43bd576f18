package reader

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/readerstyle/internal/catalog"
)

// View implements tea.Model
func (m *Model) View() string {
	header := m.renderHeader()

	body := m.viewport.View()
	if m.panel.IsOpen() {
		gap := strings.Repeat(" ", panelGap)
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderPanel(), gap, body)
	}
	body = lipgloss.NewStyle().
		Height(m.layout.body.Height).
		MaxHeight(m.layout.body.Height).
		Render(body)

	k := m.keys
	k.open = m.panel.IsOpen()
	footer := FooterStyle.Render(m.help.View(k))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader draws the trigger followed by the app and article titles.
func (m *Model) renderHeader() string {
	trigger := TriggerStyle.Render(triggerText(m.panel.IsOpen()))

	title := HeaderStyle.Render(AppName + " v" + AppVersion())
	article := SubtitleStyle.Render(m.article.Title)

	line := lipgloss.JoinHorizontal(lipgloss.Top, trigger, "   ", title, "  ", article)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// renderPanel draws the settings form. Line positions must match
// buildLayout.
func (m *Model) renderPanel() string {
	draft := m.form.Draft()
	cat := m.form.Catalog()
	inner := m.layout.innerWidth

	lines := make([]string, m.layout.buttonsLine+1)

	title := PanelTitleStyle.Render(PanelTitle)
	if draft != m.committed {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", ModifiedStyle.Render("● modified"))
	}
	lines[titleLine] = title

	for i, f := range catalog.Fields {
		line := m.layout.fieldLines[f]
		if f == separatorBefore {
			lines[line-1] = SeparatorStyle.Render(strings.Repeat("─", inner))
		}
		lines[line] = m.renderFieldRow(i, f, cat, draft)
	}

	lines[m.layout.buttonsLine] = lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(ResetLabel, resetItem()),
		strings.Repeat(" ", buttonGap),
		m.renderButton(ApplyLabel, applyItem()),
	)

	return PanelStyle.
		Width(inner + 2*(panelChromeX-1)).
		Render(strings.Join(lines, "\n"))
}

// renderFieldRow draws one field as "→ Label   value", where value is a
// radio group or a ◀ ▶ select.
func (m *Model) renderFieldRow(item int, f catalog.Field, cat *catalog.Catalog, draft catalog.Configuration) string {
	selected := m.cursor == item

	arrow := strings.Repeat(" ", cursorWidth)
	labelStyle := FieldLabelStyle
	if selected {
		arrow = "→ "
		labelStyle = SelectedFieldLabelStyle
	}

	current := draft.Get(f)
	var value string
	if radioFields[f] {
		parts := make([]string, 0, len(cat.Options(f)))
		for _, opt := range cat.Options(f) {
			style := ValueStyle
			if opt.Value == current.Value {
				style = SelectedValueStyle
			}
			parts = append(parts, style.Render(radioText(opt, opt.Value == current.Value)))
		}
		value = strings.Join(parts, strings.Repeat(" ", radioGap))
	} else {
		style := SwatchStyle(current)
		if selected && current.Color == "" {
			style = SelectedValueStyle
		}
		value = style.Render(selectText(current))
	}

	return arrow + labelStyle.Render(f.Title()) + value
}

func (m *Model) renderButton(label string, item int) string {
	if m.cursor == item {
		return SelectedButtonStyle.Render(label)
	}
	return ButtonStyle.Render(label)
}
