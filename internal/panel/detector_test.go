package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []bool
}

func (r *recorder) onChange(open bool) {
	r.calls = append(r.calls, open)
}

func mountedRef(rect Rect) *Ref {
	ref := &Ref{}
	ref.Set(rect)
	return ref
}

func TestDetectorInertWhileDetached(t *testing.T) {
	doc := NewDocument()
	rec := &recorder{}
	NewDetector(doc, mountedRef(Rect{Width: 10, Height: 10}), rec.onChange)

	doc.Dispatch(PointerDown{X: 50, Y: 50})
	doc.Dispatch(KeyPress{Key: KeyEscape})

	assert.Empty(t, rec.calls)
	assert.Equal(t, 0, doc.ListenerCount())
}

func TestDetectorOutsidePress(t *testing.T) {
	doc := NewDocument()
	rec := &recorder{}
	d := NewDetector(doc, mountedRef(Rect{X: 10, Y: 0, Width: 10, Height: 10}), rec.onChange)
	d.Sync(true)

	doc.Dispatch(PointerDown{X: 12, Y: 3})
	assert.Empty(t, rec.calls, "press inside the region is ignored")

	doc.Dispatch(PointerDown{X: 2, Y: 3})
	assert.Equal(t, []bool{false}, rec.calls)
}

func TestDetectorEscapeIgnoresTarget(t *testing.T) {
	doc := NewDocument()
	rec := &recorder{}
	d := NewDetector(doc, mountedRef(Rect{Width: 10, Height: 10}), rec.onChange)
	d.Sync(true)

	doc.Dispatch(KeyPress{Key: "a"})
	assert.Empty(t, rec.calls)

	doc.Dispatch(KeyPress{Key: KeyEscape})
	assert.Equal(t, []bool{false}, rec.calls)
}

func TestDetectorUnmountedRegionCountsAsOutside(t *testing.T) {
	tests := []struct {
		name   string
		region Region
	}{
		{"nil region", nil},
		{"unmounted ref", &Ref{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			rec := &recorder{}
			d := NewDetector(doc, tt.region, rec.onChange)
			d.Sync(true)

			doc.Dispatch(PointerDown{X: 0, Y: 0})

			assert.Equal(t, []bool{false}, rec.calls)
		})
	}
}

func TestDetectorSyncIsIdempotent(t *testing.T) {
	doc := NewDocument()
	d := NewDetector(doc, &Ref{}, func(bool) {})

	d.Sync(true)
	d.Sync(true)
	assert.Equal(t, 1, doc.ListenerCount())
	assert.True(t, d.Attached())

	d.Sync(false)
	d.Sync(false)
	assert.Equal(t, 0, doc.ListenerCount())
	assert.False(t, d.Attached())
}

func TestDetectorClose(t *testing.T) {
	doc := NewDocument()
	rec := &recorder{}
	d := NewDetector(doc, &Ref{}, rec.onChange)
	d.Sync(true)

	d.Close()
	d.Close()

	require.Equal(t, 0, doc.ListenerCount())
	doc.Dispatch(PointerDown{})
	assert.Empty(t, rec.calls)
}
