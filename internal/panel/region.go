package panel

// Region is an area of the screen that interactions can land inside.
type Region interface {
	// Mounted reports whether the region has been laid out.
	Mounted() bool
	// Contains reports whether cell (x, y) lies inside the region.
	Contains(x, y int) bool
}

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Ref is a Region whose bounds are set by the renderer once it knows where
// the element landed. The zero Ref is unmounted.
type Ref struct {
	rect    Rect
	mounted bool
}

// Set mounts the ref at rect.
func (r *Ref) Set(rect Rect) {
	r.rect = rect
	r.mounted = true
}

// Clear unmounts the ref.
func (r *Ref) Clear() {
	r.rect = Rect{}
	r.mounted = false
}

// Rect returns the current bounds. It is the zero Rect when unmounted.
func (r *Ref) Rect() Rect {
	return r.rect
}

// Mounted implements Region.
func (r *Ref) Mounted() bool {
	return r.mounted
}

// Contains implements Region. An unmounted ref contains nothing.
func (r *Ref) Contains(x, y int) bool {
	return r.mounted && r.rect.Contains(x, y)
}

type union []Region

// Union combines regions into one. It is mounted when any member is, and
// contains a cell when any mounted member does.
func Union(regions ...Region) Region {
	return union(regions)
}

func (u union) Mounted() bool {
	for _, r := range u {
		if r.Mounted() {
			return true
		}
	}
	return false
}

func (u union) Contains(x, y int) bool {
	for _, r := range u {
		if r.Mounted() && r.Contains(x, y) {
			return true
		}
	}
	return false
}
