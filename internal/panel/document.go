package panel

import "github.com/muurk/readerstyle/internal/observe"

// KeyEscape is the key name Bubble Tea reports for the Escape key.
const KeyEscape = "esc"

// Event is a root-scope input event.
type Event interface {
	isEvent()
}

// PointerDown is a mouse button press at cell (X, Y).
type PointerDown struct {
	X, Y int
}

// KeyPress is a key press, named as Bubble Tea names keys ("esc", "a", "ctrl+c").
type KeyPress struct {
	Key string
}

func (PointerDown) isEvent() {}
func (KeyPress) isEvent()    {}

// Document is the root-scope event source that listeners attach to.
type Document struct {
	listeners observe.List[Event]
}

// NewDocument creates an event source with no listeners.
func NewDocument() *Document {
	return &Document{}
}

// AddListener registers fn for every dispatched event until the returned
// subscription is closed.
func (d *Document) AddListener(fn func(Event)) *observe.Subscription {
	return d.listeners.Subscribe(fn)
}

// Dispatch delivers e to the current listeners in registration order.
func (d *Document) Dispatch(e Event) {
	d.listeners.Notify(e)
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int {
	return d.listeners.Len()
}
