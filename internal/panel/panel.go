package panel

import (
	"go.uber.org/zap"

	"github.com/muurk/readerstyle/internal/logging"
	"github.com/muurk/readerstyle/internal/observe"
)

// Panel couples a Visibility with a Detector that mirrors it.
type Panel struct {
	visibility *Visibility
	detector   *Detector
	mirror     *observe.Subscription
}

// New creates a closed panel whose detector watches doc for interactions
// outside region.
func New(doc *Document, region Region) *Panel {
	v := NewVisibility()
	d := NewDetector(doc, region, v.SetOpen)

	p := &Panel{
		visibility: v,
		detector:   d,
	}
	p.mirror = v.Subscribe(func(open bool) {
		d.Sync(open)
		logging.Debug("Panel visibility changed", zap.Bool("open", open))
	})
	return p
}

// IsOpen reports whether the panel is open.
func (p *Panel) IsOpen() bool {
	return p.visibility.IsOpen()
}

// Toggle flips the panel, as the trigger control does.
func (p *Panel) Toggle() {
	p.visibility.Toggle()
}

// SetOpen sets the panel state.
func (p *Panel) SetOpen(open bool) {
	p.visibility.SetOpen(open)
}

// Subscribe registers fn to receive visibility transitions.
func (p *Panel) Subscribe(fn func(open bool)) *observe.Subscription {
	return p.visibility.Subscribe(fn)
}

// Detector returns the panel's outside-interaction detector.
func (p *Panel) Detector() *Detector {
	return p.detector
}

// Close detaches the detector and stops mirroring visibility. The panel must
// be closed on every exit path of its owner.
func (p *Panel) Close() {
	p.mirror.Close()
	p.detector.Close()
}
