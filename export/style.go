package export

import (
	"github.com/rmtools/rmexport/scene"
)

// TextStyle is the resolved typography of one paragraph style.
type TextStyle struct {
	FontSize   int
	FontWeight string
}

// StyleMap translates the source enumerations into a target's styling
// vocabulary. Instances are immutable after construction and injected
// into the flattener, so several targets can convert the same tree
// concurrently.
type StyleMap struct {
	colors       map[scene.PenColor]string
	defaultColor string
	textStyles   map[scene.ParagraphStyle]TextStyle
	defaultText  TextStyle
	lineHeights  map[scene.ParagraphStyle]float64
	defaultLine  float64
}

// Line heights per paragraph style, in device units.
var lineHeights = map[scene.ParagraphStyle]float64{
	scene.StyleBasic:           100,
	scene.StylePlain:           71,
	scene.StyleHeading:         150,
	scene.StyleBold:            70,
	scene.StyleBullet:          35,
	scene.StyleBullet2:         35,
	scene.StyleCheckbox:        100,
	scene.StyleCheckboxChecked: 100,
}

const defaultLineHeight = 70

// WhiteboardStyles returns the style vocabulary of the whiteboard
// target: named colors, s/m/l/xl size buckets.
func WhiteboardStyles() *StyleMap {
	return &StyleMap{
		colors: map[scene.PenColor]string{
			scene.Black:       "black",
			scene.Gray:        "grey",
			scene.White:       "white",
			scene.Yellow:      "yellow",
			scene.Green:       "green",
			scene.Pink:        "light-violet",
			scene.Blue:        "blue",
			scene.Red:         "red",
			scene.GrayOverlap: "grey",
			scene.Highlight:   "yellow",
			scene.Green2:      "green",
			scene.Cyan:        "light-blue",
			scene.Magenta:     "violet",
			scene.Yellow2:     "yellow",
		},
		defaultColor: "black",
		textStyles: map[scene.ParagraphStyle]TextStyle{
			scene.StylePlain:           {FontSize: 16, FontWeight: "normal"},
			scene.StyleBold:            {FontSize: 18, FontWeight: "bold"},
			scene.StyleHeading:         {FontSize: 24, FontWeight: "bold"},
			scene.StyleBullet:          {FontSize: 16, FontWeight: "normal"},
			scene.StyleBullet2:         {FontSize: 14, FontWeight: "normal"},
			scene.StyleCheckbox:        {FontSize: 16, FontWeight: "normal"},
			scene.StyleCheckboxChecked: {FontSize: 16, FontWeight: "normal"},
		},
		defaultText: TextStyle{FontSize: 16, FontWeight: "normal"},
		lineHeights: lineHeights,
		defaultLine: defaultLineHeight,
	}
}

// VectorStyles returns the style vocabulary of the vector target:
// hex colors from the device palette.
func VectorStyles() *StyleMap {
	colors := make(map[scene.PenColor]string, len(Palette))
	for c, rgb := range Palette {
		colors[c] = rgb.Hex()
	}
	s := WhiteboardStyles()
	s.colors = colors
	s.defaultColor = Palette[scene.Black].Hex()
	return s
}

// Color maps a source color into the target vocabulary. Unknown colors
// fall back to the default (black); the raw Highlight value maps like
// yellow even in palettes that predate it.
func (s *StyleMap) Color(c scene.PenColor) string {
	if name, ok := s.colors[c]; ok {
		return name
	}
	if c == scene.Highlight {
		if name, ok := s.colors[scene.Yellow]; ok {
			return name
		}
	}
	return s.defaultColor
}

// Size buckets a thickness scale into the target's discrete sizes.
// The lower bound is inclusive: exactly 1.0 is still "s".
func (s *StyleMap) Size(thicknessScale float64) string {
	switch {
	case thicknessScale <= 1.0:
		return "s"
	case thicknessScale <= 2.0:
		return "m"
	case thicknessScale <= 3.0:
		return "l"
	default:
		return "xl"
	}
}

// Text resolves the typography for a paragraph style.
func (s *StyleMap) Text(style scene.ParagraphStyle) TextStyle {
	if ts, ok := s.textStyles[style]; ok {
		return ts
	}
	return s.defaultText
}

// LineHeight returns the vertical advance of a paragraph style.
func (s *StyleMap) LineHeight(style scene.ParagraphStyle) float64 {
	if h, ok := s.lineHeights[style]; ok {
		return h
	}
	return s.defaultLine
}
