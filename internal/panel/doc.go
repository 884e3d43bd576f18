// Package panel implements the collapsible side panel's visibility state and
// the detector that closes it on interaction outside its region.
//
// # Components
//
//   - Visibility: owns the open/closed flag. Toggle and SetOpen are the only
//     mutators; observers are notified after each actual transition.
//   - Document: the root-scope event source. The reader feeds every mouse
//     press and key press into it.
//   - Detector: listens on the Document while the panel is open. A pointer
//     press outside the panel region, or Escape, requests closure.
//   - Panel: a Visibility and a Detector wired together.
//
// # Listener Lifecycle
//
// The detector holds at most one Document listener. It attaches on the
// closed→open edge and detaches on the open→closed edge or on Close, so
// repeated open/close cycles never accumulate listeners:
//
//	doc := panel.NewDocument()
//	p := panel.New(doc, region)
//	defer p.Close()
//
//	p.Toggle()                           // open, listener attached
//	doc.Dispatch(panel.PointerDown{X: 0}) // outside, panel closes, listener detached
//
// While the panel is closed nothing is registered on the Document, so events
// cost nothing and cannot close anything.
//
// # Regions
//
// A Region reports whether it is mounted and whether a cell lies inside it.
// A press that arrives before the region is mounted counts as outside.
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. All calls are expected
// on the Bubble Tea update goroutine.
package panel
