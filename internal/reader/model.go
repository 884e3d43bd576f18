package reader

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/readerstyle/internal/catalog"
	"github.com/muurk/readerstyle/internal/form"
	"github.com/muurk/readerstyle/internal/logging"
	"github.com/muurk/readerstyle/internal/observe"
	"github.com/muurk/readerstyle/internal/panel"
)

// Options configures a reader Model.
type Options struct {
	// Catalog supplies the selectable options and the defaults. Nil means
	// the built-in catalog.
	Catalog *catalog.Catalog

	// Article is the text to show. The zero value shows SampleArticle.
	Article Article

	// OnApply receives each applied configuration after the reader has
	// re-rendered with it. May be nil.
	OnApply form.ApplyFunc
}

// Model is the reader's Bubble Tea model. It must be closed when the
// program exits.
type Model struct {
	doc        *panel.Document
	panel      *panel.Panel
	panelRef   *panel.Ref
	triggerRef *panel.Ref
	form       *form.Controller

	committed catalog.Configuration
	onApply   form.ApplyFunc
	article   Article

	// cursor is the focused panel item: a field row, Reset or Apply.
	cursor int
	layout layout

	width    int
	height   int
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	subs []*observe.Subscription
}

// New creates a reader with the panel closed and both the draft and the
// committed configuration at the catalog default.
func New(opts Options) *Model {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Builtin()
	}
	article := opts.Article
	if article.Body == "" {
		article = SampleArticle
	}

	width, height := GetTerminalSize()
	m := &Model{
		doc:        panel.NewDocument(),
		panelRef:   &panel.Ref{},
		triggerRef: &panel.Ref{},
		committed:  cat.Default(),
		onApply:    opts.OnApply,
		article:    article,
		width:      width,
		height:     height,
		viewport:   viewport.New(width, height),
		help:       help.New(),
		keys:       newKeyMap(),
	}

	// The trigger belongs to the panel's region so pressing it while open
	// toggles once instead of closing and reopening.
	m.panel = panel.New(m.doc, panel.Union(m.panelRef, m.triggerRef))
	m.form = form.NewController(cat, m.commit)

	m.subs = append(m.subs,
		m.panel.Subscribe(func(bool) { m.relayout() }),
		m.form.Subscribe(func(catalog.Configuration) { m.relayout() }),
	)

	m.relayout()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close releases the panel's document listener and the reader's
// subscriptions. It is safe to call more than once.
func (m *Model) Close() {
	for _, s := range m.subs {
		s.Close()
	}
	m.panel.Close()
}

// IsOpen reports whether the settings panel is open.
func (m *Model) IsOpen() bool {
	return m.panel.IsOpen()
}

// Draft returns the configuration being edited in the panel.
func (m *Model) Draft() catalog.Configuration {
	return m.form.Draft()
}

// Committed returns the configuration the article is rendered with.
func (m *Model) Committed() catalog.Configuration {
	return m.committed
}

// Listeners returns the number of listeners on the reader's document.
func (m *Model) Listeners() int {
	return m.doc.ListenerCount()
}

// commit is the form's apply consumer.
func (m *Model) commit(cfg catalog.Configuration) {
	m.committed = cfg
	m.relayout()
	if m.onApply != nil {
		m.onApply(cfg)
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Outside presses close the panel here, before the press is acted on.
	m.doc.Dispatch(panel.PointerDown{X: msg.X, Y: msg.Y})

	if m.triggerRef.Contains(msg.X, msg.Y) {
		m.panel.Toggle()
		return m, nil
	}

	if m.panel.IsOpen() {
		if t, ok := m.layout.hit(msg.X, msg.Y); ok {
			m.activate(t)
		}
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.doc.Dispatch(panel.KeyPress{Key: msg.String()})

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.panel.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Close):
		// Handled by the panel's detector.
		return m, nil
	}

	if !m.panel.IsOpen() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + itemCount()) % itemCount()

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % itemCount()

	case key.Matches(msg, m.keys.Prev):
		m.step(-1)

	case key.Matches(msg, m.keys.Next):
		m.step(1)

	case key.Matches(msg, m.keys.Enter):
		switch {
		case m.cursor == resetItem():
			m.form.Reset()
		case m.cursor == applyItem():
			m.form.Apply()
		default:
			m.step(1)
		}

	case key.Matches(msg, m.keys.Reset):
		m.form.Reset()

	case key.Matches(msg, m.keys.Apply):
		m.form.Apply()
	}

	return m, nil
}

// step cycles the focused field's value by delta.
func (m *Model) step(delta int) {
	if !fieldItem(m.cursor) {
		return
	}
	f := catalog.Fields[m.cursor]
	next := m.form.Catalog().Step(f, m.form.Draft().Get(f), delta)
	m.form.SetField(f, next)
}

// activate performs the action of a clicked panel target.
func (m *Model) activate(t target) {
	m.cursor = t.item

	switch t.kind {
	case targetPrev:
		m.step(-1)
	case targetNext:
		m.step(1)
	case targetOption:
		m.form.SetField(t.field, t.option)
	case targetReset:
		m.form.Reset()
	case targetApply:
		m.form.Apply()
	}
}

// relayout recomputes the frame after a size or state change and mounts
// the panel and trigger regions where they will be drawn.
func (m *Model) relayout() {
	open := m.panel != nil && m.panel.IsOpen()
	m.layout = buildLayout(m.width, m.height, open, m.form.Catalog(), m.form.Draft())

	m.triggerRef.Set(m.layout.trigger)
	if open {
		m.panelRef.Set(m.layout.panel)
	} else {
		m.panelRef.Clear()
	}

	m.viewport.Width = m.layout.body.Width
	m.viewport.Height = m.layout.body.Height
	page := RenderArticle(m.article, m.committed, m.layout.body.Width)
	m.viewport.SetContent(lipgloss.PlaceHorizontal(m.layout.body.Width, lipgloss.Center, page))

	logging.Debug("Reader layout updated",
		zap.Bool("open", open),
		zap.Int("width", m.width),
		zap.Int("height", m.height),
	)
}
