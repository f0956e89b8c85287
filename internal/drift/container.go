package drift

// ContainerID is the stable name of a container.
type ContainerID string

// Container is a rectangular region that hosts drifting circles. The manager
// only reads its identity and current size; width or height may be zero
// before the first layout.
type Container interface {
	ID() ContainerID
	Size() (width, height float64)
}

// Region is a Container laid out as a fraction of the screen.
type Region struct {
	id ContainerID

	// Fractional bounds, each in [0, 1].
	fx, fy, fw, fh float64

	// Pixel bounds from the most recent Resize.
	x, y, w, h float64
}

// NewRegion creates a region covering the given fraction of the screen. It
// has zero size until Resize is called.
func NewRegion(id ContainerID, fx, fy, fw, fh float64) *Region {
	return &Region{id: id, fx: fx, fy: fy, fw: fw, fh: fh}
}

func (r *Region) ID() ContainerID { return r.id }

func (r *Region) Size() (float64, float64) { return r.w, r.h }

// Bounds returns the pixel origin and size of the region on screen.
func (r *Region) Bounds() (x, y, w, h float64) {
	return r.x, r.y, r.w, r.h
}

// Resize recomputes the pixel bounds for a screen of the given size and
// reports whether they changed.
func (r *Region) Resize(screenWidth, screenHeight int) bool {
	sw, sh := float64(screenWidth), float64(screenHeight)
	x, y := r.fx*sw, r.fy*sh
	w, h := r.fw*sw, r.fh*sh
	changed := x != r.x || y != r.y || w != r.w || h != r.h
	r.x, r.y, r.w, r.h = x, y, w, h
	return changed
}
