package export

// Device geometry of the source pages.
const (
	DeviceWidth  = 1404
	DeviceHeight = 1872
)

// Vec is a 2D offset or position in float space.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Transform maps an absolute source-space point into target space.
// Stages run in a fixed order: the accumulated anchor offset is added
// to the raw point, then axis scaling, then the optional y flip, then
// the target translation. All target-specific coordinate arithmetic
// lives here; assemblers never do their own.
type Transform struct {
	ScaleX float64
	ScaleY float64

	// FlipY maps y to FlipHeight-y after scaling, for targets whose
	// y axis grows upward.
	FlipY      bool
	FlipHeight float64

	Translate Vec
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Apply resolves a group-local point against the accumulated anchor
// offset and maps it into target space.
func (t Transform) Apply(x, y float64, offset Vec) Vec {
	x += offset.X
	y += offset.Y

	x *= t.ScaleX
	y *= t.ScaleY

	if t.FlipY {
		y = t.FlipHeight - y
	}

	return Vec{X: x + t.Translate.X, Y: y + t.Translate.Y}
}

// PageCentered returns the transform shared by the page-shaped targets:
// unit scale with the x axis shifted so the source's centered
// x coordinates land in [0, DeviceWidth].
func PageCentered() Transform {
	t := Identity()
	t.Translate.X = DeviceWidth / 2
	return t
}

// FitBox returns a transform that scales uniformly by scale and
// translates so that the box minimum lands on pad. Used by targets
// that normalize against the page bounding box.
func FitBox(min Vec, scale float64, pad Vec) Transform {
	return Transform{
		ScaleX:    scale,
		ScaleY:    scale,
		Translate: Vec{X: pad.X - min.X*scale, Y: pad.Y - min.Y*scale},
	}
}
