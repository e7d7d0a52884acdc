package export

import (
	"fmt"

	"github.com/rmtools/rmexport/scene"
)

// RGB is a device palette entry.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the device rendering palette, keyed by the raw color
// enumeration. The Highlight value is intentionally absent; callers
// resolve it through the yellow fallback.
var Palette = map[scene.PenColor]RGB{
	scene.Black:       {0, 0, 0},
	scene.Gray:        {144, 144, 144},
	scene.White:       {255, 255, 255},
	scene.Yellow:      {251, 247, 25},
	scene.Green:       {0, 255, 0},
	scene.Pink:        {255, 20, 147},
	scene.Blue:        {0, 98, 204},
	scene.Red:         {217, 7, 7},
	scene.GrayOverlap: {125, 125, 125},
	scene.Green2:      {145, 218, 113},
	scene.Cyan:        {116, 210, 232},
	scene.Magenta:     {192, 127, 210},
	scene.Yellow2:     {247, 232, 81},
}

// PaletteColor resolves a raw color to RGB, applying the same
// fallbacks as StyleMap.Color: Highlight renders as yellow, anything
// unknown as black.
func PaletteColor(c scene.PenColor) RGB {
	if rgb, ok := Palette[c]; ok {
		return rgb
	}
	if c == scene.Highlight {
		return Palette[scene.Yellow]
	}
	return Palette[scene.Black]
}

// Pen is the rendered form of a tool/color/thickness combination, used
// by the ink-shaped targets for brush definitions.
type Pen struct {
	Name    string
	Width   float64
	Opacity float64
	Linecap string
	Color   scene.PenColor
}

// NewPen derives rendering properties from a stroke's tool settings.
// Widths are in device pixels at thickness scale 1.
func NewPen(tool scene.Tool, color scene.PenColor, thicknessScale float64) Pen {
	p := Pen{
		Name:    tool.String(),
		Width:   2 * thicknessScale,
		Opacity: 1,
		Linecap: "round",
		Color:   color,
	}
	switch {
	case tool.IsHighlighter():
		p.Width = 15 * thicknessScale
		p.Opacity = 0.4
		p.Linecap = "square"
		// highlighter ink is always rendered yellow-ish regardless of
		// the recorded color on old firmware
		if color == scene.Highlight {
			p.Color = scene.Yellow
		}
	case tool == scene.Paintbrush1 || tool == scene.Paintbrush2:
		p.Width = 4 * thicknessScale
	case tool == scene.Marker1 || tool == scene.Marker2:
		p.Width = 3 * thicknessScale
	case tool == scene.Pencil1 || tool == scene.Pencil2:
		p.Opacity = 0.9
	case tool == scene.MechanicalPencil1 || tool == scene.MechanicalPencil2:
		p.Width = 1.4 * thicknessScale
		p.Opacity = 0.9
	case tool == scene.Fineliner1 || tool == scene.Fineliner2:
		p.Width = 1.6 * thicknessScale
	case tool == scene.Calligraphy:
		p.Width = 3 * thicknessScale
	case tool == scene.Shader:
		p.Width = 8 * thicknessScale
		p.Opacity = 0.3
	}
	return p
}

// ID returns a stable identifier for brush deduplication.
func (p Pen) ID() string {
	return fmt.Sprintf("name_%s_cap_%s_op_%v_w_%v_clr_%d",
		p.Name, p.Linecap, p.Opacity, p.Width, p.Color)
}
