package scene

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// JSON interchange form of a parsed page. This is the input boundary
// of the module: whatever parses the proprietary binary format dumps
// its tree in this shape.

type treeJSON struct {
	Root     *groupJSON `json:"root"`
	RootText *textJSON  `json:"rootText,omitempty"`
}

type groupJSON struct {
	ID            string      `json:"id,omitempty"`
	Label         string      `json:"label,omitempty"`
	AnchorID      *string     `json:"anchorId,omitempty"`
	AnchorOriginX *float64    `json:"anchorOriginX,omitempty"`
	Children      []childJSON `json:"children,omitempty"`
}

// childJSON carries exactly one of group, stroke or text.
type childJSON struct {
	ID     string      `json:"id,omitempty"`
	Group  *groupJSON  `json:"group,omitempty"`
	Stroke *strokeJSON `json:"stroke,omitempty"`
	Text   *textJSON   `json:"text,omitempty"`
}

type strokeJSON struct {
	Tool           uint32      `json:"tool"`
	Color          uint32      `json:"color"`
	ThicknessScale float64     `json:"thicknessScale"`
	StartingLength float32     `json:"startingLength,omitempty"`
	MoveID         uint32      `json:"moveId,omitempty"`
	Points         []pointJSON `json:"points"`
}

type pointJSON struct {
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Speed     float32 `json:"speed,omitempty"`
	Direction float32 `json:"direction,omitempty"`
	Width     float32 `json:"width,omitempty"`
	Pressure  float32 `json:"pressure,omitempty"`
}

type textJSON struct {
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Width      float64         `json:"width,omitempty"`
	Paragraphs []paragraphJSON `json:"paragraphs"`
}

type paragraphJSON struct {
	StartID string `json:"startId,omitempty"`
	Style   uint32 `json:"style"`
	Content string `json:"content"`
}

// ReadTree decodes a page tree from its JSON interchange form.
func ReadTree(r io.Reader) (*Tree, error) {
	var tj treeJSON
	if err := json.NewDecoder(r).Decode(&tj); err != nil {
		return nil, errors.Wrap(err, "decoding scene tree")
	}
	if tj.Root == nil {
		return nil, errors.New("scene tree has no root group")
	}

	root, err := groupFromJSON(tj.Root)
	if err != nil {
		return nil, err
	}
	tree := &Tree{Root: root}
	if tj.RootText != nil {
		text, err := textFromJSON(tj.RootText)
		if err != nil {
			return nil, err
		}
		tree.RootText = text
	}
	return tree, nil
}

// WriteTree encodes a page tree in its JSON interchange form.
func WriteTree(w io.Writer, t *Tree) error {
	if t == nil || t.Root == nil {
		return errors.New("scene tree has no root group")
	}
	tj := treeJSON{Root: groupToJSON(t.Root)}
	if t.RootText != nil {
		tj.RootText = textToJSON(t.RootText)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(&tj), "encoding scene tree")
}

func groupFromJSON(gj *groupJSON) (*Group, error) {
	g := &Group{Label: gj.Label, AnchorOriginX: gj.AnchorOriginX}
	if gj.ID != "" {
		id, err := ParseID(gj.ID)
		if err != nil {
			return nil, err
		}
		g.NodeID = id
	}
	if gj.AnchorID != nil {
		id, err := ParseID(*gj.AnchorID)
		if err != nil {
			return nil, err
		}
		g.AnchorID = &id
	}
	for i, cj := range gj.Children {
		var id ID
		if cj.ID != "" {
			parsed, err := ParseID(cj.ID)
			if err != nil {
				return nil, err
			}
			id = parsed
		}
		switch {
		case cj.Group != nil:
			sub, err := groupFromJSON(cj.Group)
			if err != nil {
				return nil, err
			}
			g.Append(id, sub)
		case cj.Stroke != nil:
			g.Append(id, strokeFromJSON(cj.Stroke))
		case cj.Text != nil:
			text, err := textFromJSON(cj.Text)
			if err != nil {
				return nil, err
			}
			g.Append(id, text)
		default:
			return nil, errors.Errorf("child %d of group %s has no item", i, gj.ID)
		}
	}
	return g, nil
}

func strokeFromJSON(sj *strokeJSON) *Stroke {
	s := &Stroke{
		Tool:           Tool(sj.Tool),
		Color:          PenColor(sj.Color),
		ThicknessScale: sj.ThicknessScale,
		StartingLength: sj.StartingLength,
		MoveID:         sj.MoveID,
	}
	s.Points = make([]Point, len(sj.Points))
	for i, pj := range sj.Points {
		s.Points[i] = Point{
			X:         pj.X,
			Y:         pj.Y,
			Speed:     pj.Speed,
			Direction: pj.Direction,
			Width:     pj.Width,
			Pressure:  pj.Pressure,
		}
	}
	return s
}

func textFromJSON(tj *textJSON) (*Text, error) {
	t := &Text{X: tj.X, Y: tj.Y, Width: tj.Width}
	t.Document.Paragraphs = make([]Paragraph, len(tj.Paragraphs))
	for i, pj := range tj.Paragraphs {
		p := Paragraph{Style: ParagraphStyle(pj.Style), Content: pj.Content}
		if pj.StartID != "" {
			id, err := ParseID(pj.StartID)
			if err != nil {
				return nil, err
			}
			p.StartID = id
		}
		t.Document.Paragraphs[i] = p
	}
	return t, nil
}

func groupToJSON(g *Group) *groupJSON {
	gj := &groupJSON{Label: g.Label, AnchorOriginX: g.AnchorOriginX}
	if !g.NodeID.IsZero() {
		gj.ID = g.NodeID.String()
	}
	if g.AnchorID != nil {
		s := g.AnchorID.String()
		gj.AnchorID = &s
	}
	for _, c := range g.Children {
		cj := childJSON{}
		if !c.ID.IsZero() {
			cj.ID = c.ID.String()
		}
		switch it := c.Item.(type) {
		case *Group:
			cj.Group = groupToJSON(it)
		case *Stroke:
			cj.Stroke = strokeToJSON(it)
		case *Text:
			cj.Text = textToJSON(it)
		}
		gj.Children = append(gj.Children, cj)
	}
	return gj
}

func strokeToJSON(s *Stroke) *strokeJSON {
	sj := &strokeJSON{
		Tool:           uint32(s.Tool),
		Color:          uint32(s.Color),
		ThicknessScale: s.ThicknessScale,
		StartingLength: s.StartingLength,
		MoveID:         s.MoveID,
	}
	sj.Points = make([]pointJSON, len(s.Points))
	for i, p := range s.Points {
		sj.Points[i] = pointJSON{
			X:         p.X,
			Y:         p.Y,
			Speed:     p.Speed,
			Direction: p.Direction,
			Width:     p.Width,
			Pressure:  p.Pressure,
		}
	}
	return sj
}

func textToJSON(t *Text) *textJSON {
	tj := &textJSON{X: t.X, Y: t.Y, Width: t.Width}
	for _, p := range t.Document.Paragraphs {
		pj := paragraphJSON{Style: uint32(p.Style), Content: p.Content}
		if !p.StartID.IsZero() {
			pj.StartID = p.StartID.String()
		}
		tj.Paragraphs = append(tj.Paragraphs, pj)
	}
	return tj
}
