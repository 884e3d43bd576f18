package panel

import (
	"go.uber.org/zap"

	"github.com/muurk/readerstyle/internal/logging"
	"github.com/muurk/readerstyle/internal/observe"
)

// Detector requests closure when a pointer press lands outside its region or
// Escape is pressed. It only listens while attached.
type Detector struct {
	doc      *Document
	region   Region
	onChange func(open bool)
	listener *observe.Subscription
}

// NewDetector creates a detached detector. onChange is called with false
// whenever an outside interaction is seen while attached.
func NewDetector(doc *Document, region Region, onChange func(open bool)) *Detector {
	return &Detector{
		doc:      doc,
		region:   region,
		onChange: onChange,
	}
}

// Sync attaches the detector when open is true and detaches it otherwise.
// Calling it again with the same value does nothing.
func (d *Detector) Sync(open bool) {
	if open {
		d.attach()
	} else {
		d.detach()
	}
}

// Attached reports whether the detector currently holds a listener.
func (d *Detector) Attached() bool {
	return d.listener.Active()
}

// Close releases the listener if one is held. It is safe to call repeatedly.
func (d *Detector) Close() {
	d.detach()
}

func (d *Detector) attach() {
	if d.Attached() {
		return
	}
	d.listener = d.doc.AddListener(d.handle)
	logging.Debug("Outside-interaction listener attached",
		zap.Int("listeners", d.doc.ListenerCount()),
	)
}

func (d *Detector) detach() {
	if !d.Attached() {
		return
	}
	d.listener.Close()
	d.listener = nil
	logging.Debug("Outside-interaction listener detached",
		zap.Int("listeners", d.doc.ListenerCount()),
	)
}

func (d *Detector) handle(e Event) {
	switch e := e.(type) {
	case PointerDown:
		if d.inside(e.X, e.Y) {
			return
		}
		logging.Debug("Pointer press outside panel",
			zap.Int("x", e.X),
			zap.Int("y", e.Y),
		)
		d.onChange(false)

	case KeyPress:
		if e.Key == KeyEscape {
			d.onChange(false)
		}
	}
}

// inside treats an unmounted region as not containing anything.
func (d *Detector) inside(x, y int) bool {
	return d.region != nil && d.region.Mounted() && d.region.Contains(x, y)
}
