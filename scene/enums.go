package scene

// Tool is the raw pen tool enumeration of the page format. The _2
// variants were introduced with the v6 format; both map to the same
// pen behavior.
type Tool uint32

const (
	Paintbrush1       Tool = 0
	Pencil1           Tool = 1
	Ballpoint1        Tool = 2
	Marker1           Tool = 3
	Fineliner1        Tool = 4
	Highlighter1      Tool = 5
	Eraser            Tool = 6
	MechanicalPencil1 Tool = 7
	EraserArea        Tool = 8
	Paintbrush2       Tool = 12
	MechanicalPencil2 Tool = 13
	Pencil2           Tool = 14
	Ballpoint2        Tool = 15
	Marker2           Tool = 16
	Fineliner2        Tool = 17
	Highlighter2      Tool = 18
	Calligraphy       Tool = 21
	Shader            Tool = 23
)

func (t Tool) String() string {
	switch t {
	case Paintbrush1, Paintbrush2:
		return "Paintbrush"
	case Pencil1, Pencil2:
		return "Pencil"
	case Ballpoint1, Ballpoint2:
		return "Ballpoint"
	case Marker1, Marker2:
		return "Marker"
	case Fineliner1, Fineliner2:
		return "Fineliner"
	case Highlighter1, Highlighter2:
		return "Highlighter"
	case Eraser:
		return "Eraser"
	case EraserArea:
		return "EraserArea"
	case MechanicalPencil1, MechanicalPencil2:
		return "MechanicalPencil"
	case Calligraphy:
		return "Calligraphy"
	case Shader:
		return "Shader"
	}
	return "Unknown"
}

// IsEraser reports whether the tool removes ink rather than adding it.
func (t Tool) IsEraser() bool {
	return t == Eraser || t == EraserArea
}

// IsHighlighter reports whether the tool draws translucent ink.
func (t Tool) IsHighlighter() bool {
	return t == Highlighter1 || t == Highlighter2
}

// PenColor is the raw color enumeration of the page format.
type PenColor uint32

const (
	Black       PenColor = 0
	Gray        PenColor = 1
	White       PenColor = 2
	Yellow      PenColor = 3
	Green       PenColor = 4
	Pink        PenColor = 5
	Blue        PenColor = 6
	Red         PenColor = 7
	GrayOverlap PenColor = 8
	// Highlight is emitted by newer firmware for highlighter strokes.
	// Downstream palettes treat it as yellow.
	Highlight PenColor = 9
	Green2    PenColor = 10
	Cyan      PenColor = 11
	Magenta   PenColor = 12
	Yellow2   PenColor = 13
)

func (c PenColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Gray:
		return "Gray"
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Pink:
		return "Pink"
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	case GrayOverlap:
		return "GrayOverlap"
	case Highlight:
		return "Highlight"
	case Green2:
		return "Green2"
	case Cyan:
		return "Cyan"
	case Magenta:
		return "Magenta"
	case Yellow2:
		return "Yellow2"
	}
	return "Unknown"
}

// ParagraphStyle is the style tag attached to a typed-text paragraph.
type ParagraphStyle uint32

const (
	StyleBasic           ParagraphStyle = 0
	StylePlain           ParagraphStyle = 1
	StyleHeading         ParagraphStyle = 2
	StyleBold            ParagraphStyle = 3
	StyleBullet          ParagraphStyle = 4
	StyleBullet2         ParagraphStyle = 5
	StyleCheckbox        ParagraphStyle = 6
	StyleCheckboxChecked ParagraphStyle = 7
)

func (s ParagraphStyle) String() string {
	switch s {
	case StyleBasic:
		return "BASIC"
	case StylePlain:
		return "PLAIN"
	case StyleHeading:
		return "HEADING"
	case StyleBold:
		return "BOLD"
	case StyleBullet:
		return "BULLET"
	case StyleBullet2:
		return "BULLET2"
	case StyleCheckbox:
		return "CHECKBOX"
	case StyleCheckboxChecked:
		return "CHECKBOX_CHECKED"
	}
	return "UNKNOWN"
}
