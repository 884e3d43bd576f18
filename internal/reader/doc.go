// Package reader implements the readerstyle terminal reader: an article view
// with a collapsible settings panel on its left.
//
// The reader is a Bubble Tea model. It owns the three state containers that
// make up the settings form and wires them to terminal input:
//
//   - panel.Panel: open/closed state plus the outside-interaction detector
//   - form.Controller: the draft configuration edited by the panel
//   - the committed configuration, replaced only when the draft is applied
//
// # Input Routing
//
// Every mouse press and key press is first dispatched to the panel's
// Document, so the detector sees it before anything else. Only then does the
// reader act on it itself:
//
//  1. Mouse press on the trigger arrow toggles the panel. The trigger is part
//     of the detector's region, so a press on it never counts as outside.
//  2. Mouse press on a panel control edits the draft, resets it or applies it.
//  3. Keys: tab/ctrl+o toggle, esc closes (via the detector), the arrow keys
//     move between panel rows and cycle values, enter activates.
//
// Closing the panel never touches the draft. Reopening it shows the values
// that were there before it closed.
//
// # Layout
//
// The screen is a one-line header holding the trigger, the body, and a
// one-line help footer from bubbles/help. While open, the panel occupies the
// left of the body and the article viewport shifts right. Hit targets are
// computed together with the layout so mouse coordinates map to the same
// cells that were rendered.
//
// # Usage
//
//	m := reader.New(reader.Options{
//	    Catalog: catalog.Builtin(),
//	    OnApply: func(cfg catalog.Configuration) { hub.Publish(cfg) },
//	})
//	defer m.Close()
//
//	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	_, err := p.Run()
package reader
