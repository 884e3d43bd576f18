package panel

import "github.com/muurk/readerstyle/internal/observe"

// Visibility owns the panel's open/closed flag. The zero value is closed.
type Visibility struct {
	open      bool
	observers observe.List[bool]
}

// NewVisibility returns a closed Visibility.
func NewVisibility() *Visibility {
	return &Visibility{}
}

// IsOpen reports whether the panel is open.
func (v *Visibility) IsOpen() bool {
	return v.open
}

// Toggle flips the flag.
func (v *Visibility) Toggle() {
	v.SetOpen(!v.open)
}

// SetOpen sets the flag. Observers are notified only when the value changes.
func (v *Visibility) SetOpen(open bool) {
	if v.open == open {
		return
	}
	v.open = open
	v.observers.Notify(open)
}

// SetClosed closes the panel.
func (v *Visibility) SetClosed() {
	v.SetOpen(false)
}

// Subscribe registers fn to receive the new value after every transition.
func (v *Visibility) Subscribe(fn func(open bool)) *observe.Subscription {
	return v.observers.Subscribe(fn)
}
