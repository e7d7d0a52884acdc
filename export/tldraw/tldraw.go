// Package tldraw assembles flattened shapes into a whiteboard
// document importable by tldraw applications.
package tldraw

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/rmtools/rmexport/export"
	"github.com/rmtools/rmexport/log"
	"github.com/rmtools/rmexport/scene"
)

const (
	// FileFormatVersion is the fixed top-level version marker.
	FileFormatVersion = 1
	// SchemaVersion is the store schema generation this writer emits.
	SchemaVersion = 2
)

// The pointer boilerplate wants an activity timestamp; a fixed one
// keeps output byte-identical across runs.
const defaultPointerTimestamp int64 = 1759583342499

// sequences is the store compatibility table, copied verbatim from a
// document exported by the reference application.
var sequences = map[string]int{
	"com.tldraw.store":               5,
	"com.tldraw.asset":               1,
	"com.tldraw.camera":              1,
	"com.tldraw.document":            2,
	"com.tldraw.instance":            25,
	"com.tldraw.instance_page_state": 5,
	"com.tldraw.page":                1,
	"com.tldraw.instance_presence":   6,
	"com.tldraw.pointer":             1,
	"com.tldraw.shape":               4,
	"com.tldraw.asset.bookmark":      2,
	"com.tldraw.asset.image":         5,
	"com.tldraw.asset.video":         5,
	"com.tldraw.shape.group":         0,
	"com.tldraw.shape.text":          3,
	"com.tldraw.shape.bookmark":      2,
	"com.tldraw.shape.draw":          2,
	"com.tldraw.shape.geo":           10,
	"com.tldraw.shape.note":          9,
	"com.tldraw.shape.line":          5,
	"com.tldraw.shape.frame":         1,
	"com.tldraw.shape.arrow":         7,
	"com.tldraw.shape.highlight":     1,
	"com.tldraw.shape.embed":         4,
	"com.tldraw.shape.image":         5,
	"com.tldraw.shape.video":         4,
	"com.tldraw.binding.arrow":       1,
}

// Options configure one conversion. The zero value is usable.
type Options struct {
	// Styles defaults to export.WhiteboardStyles.
	Styles *export.StyleMap
	// Transform defaults to export.PageCentered.
	Transform *export.Transform
	// Rand, when set, appends opaque tails to index keys the way the
	// reference application does. Leave nil for deterministic keys.
	Rand rand.Source
	// PointerTimestamp overrides the fixed boilerplate timestamp.
	PointerTimestamp int64
	// PageName defaults to "Page 1".
	PageName string
}

func (o *Options) styles() *export.StyleMap {
	if o.Styles != nil {
		return o.Styles
	}
	return export.WhiteboardStyles()
}

func (o *Options) transform() export.Transform {
	if o.Transform != nil {
		return *o.Transform
	}
	return export.PageCentered()
}

type document struct {
	TldrawFileFormatVersion int           `json:"tldrawFileFormatVersion"`
	Schema                  schema        `json:"schema"`
	Records                 []interface{} `json:"records"`
}

type schema struct {
	SchemaVersion int            `json:"schemaVersion"`
	Sequences     map[string]int `json:"sequences"`
}

// meta encodes as the empty object every record carries.
type meta struct{}

type documentRecord struct {
	GridSize int    `json:"gridSize"`
	Name     string `json:"name"`
	Meta     meta   `json:"meta"`
	ID       string `json:"id"`
	TypeName string `json:"typeName"`
}

type pointerRecord struct {
	ID                    string `json:"id"`
	TypeName              string `json:"typeName"`
	X                     int    `json:"x"`
	Y                     int    `json:"y"`
	LastActivityTimestamp int64  `json:"lastActivityTimestamp"`
	Meta                  meta   `json:"meta"`
}

type pageRecord struct {
	Meta     meta   `json:"meta"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Index    string `json:"index"`
	TypeName string `json:"typeName"`
}

type cursor struct {
	Type     string  `json:"type"`
	Rotation float64 `json:"rotation"`
}

type screenBounds struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type instanceRecord struct {
	FollowingUserID     interface{}       `json:"followingUserId"`
	OpacityForNextShape float64           `json:"opacityForNextShape"`
	StylesForNextShape  map[string]string `json:"stylesForNextShape"`
	Brush               interface{}       `json:"brush"`
	Scribbles           []interface{}     `json:"scribbles"`
	Cursor              cursor            `json:"cursor"`
	IsFocusMode         bool              `json:"isFocusMode"`
	ExportBackground    bool              `json:"exportBackground"`
	IsDebugMode         bool              `json:"isDebugMode"`
	IsToolLocked        bool              `json:"isToolLocked"`
	ScreenBounds        screenBounds      `json:"screenBounds"`
	Insets              []bool            `json:"insets"`
	ZoomBrush           interface{}       `json:"zoomBrush"`
	IsGridMode          bool              `json:"isGridMode"`
	IsPenMode           bool              `json:"isPenMode"`
	ChatMessage         string            `json:"chatMessage"`
	IsChatting          bool              `json:"isChatting"`
	HighlightedUserIDs  []interface{}     `json:"highlightedUserIds"`
	IsFocused           bool              `json:"isFocused"`
	DevicePixelRatio    float64           `json:"devicePixelRatio"`
	IsCoarsePointer     bool              `json:"isCoarsePointer"`
	IsHoveringCanvas    bool              `json:"isHoveringCanvas"`
	OpenMenus           []interface{}     `json:"openMenus"`
	IsChangingStyle     bool              `json:"isChangingStyle"`
	IsReadonly          bool              `json:"isReadonly"`
	Meta                meta              `json:"meta"`
	DuplicateProps      interface{}       `json:"duplicateProps"`
	ID                  string            `json:"id"`
	CurrentPageID       string            `json:"currentPageId"`
	TypeName            string            `json:"typeName"`
}

type pageStateRecord struct {
	EditingShapeID  interface{}   `json:"editingShapeId"`
	CroppingShapeID interface{}   `json:"croppingShapeId"`
	SelectedShapeID []interface{} `json:"selectedShapeIds"`
	HoveredShapeID  interface{}   `json:"hoveredShapeId"`
	ErasingShapeIDs []interface{} `json:"erasingShapeIds"`
	HintingShapeIDs []interface{} `json:"hintingShapeIds"`
	FocusedGroupID  interface{}   `json:"focusedGroupId"`
	Meta            meta          `json:"meta"`
	ID              string        `json:"id"`
	PageID          string        `json:"pageId"`
	TypeName        string        `json:"typeName"`
}

type cameraRecord struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Meta     meta    `json:"meta"`
	ID       string  `json:"id"`
	TypeName string  `json:"typeName"`
}

type xyz struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type segment struct {
	Type   string `json:"type"`
	Points []xyz  `json:"points"`
}

type drawProps struct {
	Segments   []segment `json:"segments"`
	Color      string    `json:"color"`
	Fill       string    `json:"fill"`
	Dash       string    `json:"dash"`
	Size       string    `json:"size"`
	IsComplete bool      `json:"isComplete"`
	IsClosed   bool      `json:"isClosed"`
	IsPen      bool      `json:"isPen"`
	Scale      float64   `json:"scale"`
}

type drawShapeRecord struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Rotation float64   `json:"rotation"`
	IsLocked bool      `json:"isLocked"`
	Opacity  float64   `json:"opacity"`
	Meta     meta      `json:"meta"`
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Props    drawProps `json:"props"`
	ParentID string    `json:"parentId"`
	Index    string    `json:"index"`
	TypeName string    `json:"typeName"`
}

type richTextText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type richTextAttrs struct {
	Dir string `json:"dir"`
}

type richTextParagraph struct {
	Type    string         `json:"type"`
	Attrs   richTextAttrs  `json:"attrs"`
	Content []richTextText `json:"content"`
}

type richText struct {
	Type    string              `json:"type"`
	Content []richTextParagraph `json:"content"`
}

type textProps struct {
	Color      string   `json:"color"`
	Size       string   `json:"size"`
	FontSize   int      `json:"fontSize"`
	FontWeight string   `json:"fontWeight"`
	W          float64  `json:"w"`
	Font       string   `json:"font"`
	TextAlign  string   `json:"textAlign"`
	AutoSize   bool     `json:"autoSize"`
	Scale      float64  `json:"scale"`
	RichText   richText `json:"richText"`
}

type textShapeRecord struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Rotation float64   `json:"rotation"`
	IsLocked bool      `json:"isLocked"`
	Opacity  float64   `json:"opacity"`
	Meta     meta      `json:"meta"`
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Props    textProps `json:"props"`
	ParentID string    `json:"parentId"`
	Index    string    `json:"index"`
	TypeName string    `json:"typeName"`
}

// Write converts a scene tree into a whiteboard document on w. The
// boilerplate records come first, then one shape record per flattened
// stroke and root-text paragraph, in emission order.
func Write(w io.Writer, tree *scene.Tree, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	styles := opts.styles()
	transform := opts.transform()

	timestamp := opts.PointerTimestamp
	if timestamp == 0 {
		timestamp = defaultPointerTimestamp
	}
	pageName := opts.PageName
	if pageName == "" {
		pageName = "Page 1"
	}

	doc := document{
		TldrawFileFormatVersion: FileFormatVersion,
		Schema: schema{
			SchemaVersion: SchemaVersion,
			Sequences:     sequences,
		},
		Records: boilerplate(pageName, timestamp),
	}

	var indexes *export.IndexGenerator
	if opts.Rand != nil {
		indexes = export.NewOpaqueIndexGenerator(opts.Rand)
	} else {
		indexes = export.NewIndexGenerator()
	}

	flattener := export.NewFlattener(tree, transform, styles)
	count := 0
	err := flattener.Run(tree, func(s export.Shape) error {
		switch s.Kind {
		case export.StrokeShape:
			doc.Records = append(doc.Records, drawRecord(s, styles, indexes.Next()))
		case export.TextShape:
			doc.Records = append(doc.Records, textRecord(s, styles, indexes.Next()))
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	log.Trace.Printf("assembled whiteboard document with %d shapes", count)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(&doc), "writing whiteboard document")
}

func boilerplate(pageName string, timestamp int64) []interface{} {
	return []interface{}{
		documentRecord{
			GridSize: 10,
			ID:       "document:document",
			TypeName: "document",
		},
		pointerRecord{
			ID:                    "pointer:pointer",
			TypeName:              "pointer",
			LastActivityTimestamp: timestamp,
		},
		pageRecord{
			ID:       "page:page",
			Name:     pageName,
			Index:    "a1",
			TypeName: "page",
		},
		instanceRecord{
			OpacityForNextShape: 1,
			StylesForNextShape:  map[string]string{"tldraw:geo": "rectangle"},
			Scribbles:           []interface{}{},
			Cursor:              cursor{Type: "default"},
			ExportBackground:    true,
			ScreenBounds:        screenBounds{W: 1502, H: 809},
			Insets:              []bool{false, false, false, false},
			HighlightedUserIDs:  []interface{}{},
			IsFocused:           true,
			DevicePixelRatio:    2,
			IsHoveringCanvas:    true,
			OpenMenus:           []interface{}{},
			ID:                  "instance:instance",
			CurrentPageID:       "page:page",
			TypeName:            "instance",
		},
		pageStateRecord{
			SelectedShapeID: []interface{}{},
			ErasingShapeIDs: []interface{}{},
			HintingShapeIDs: []interface{}{},
			ID:              "instance_page_state:page:page",
			PageID:          "page:page",
			TypeName:        "instance_page_state",
		},
		cameraRecord{
			Z:        1,
			ID:       "camera:page:page",
			TypeName: "camera",
		},
	}
}

func drawRecord(s export.Shape, styles *export.StyleMap, index string) drawShapeRecord {
	points := make([]xyz, len(s.Points))
	for i, p := range s.Points {
		z := p.Pressure
		if z == 0 {
			z = 0.5
		}
		points[i] = xyz{X: p.X, Y: p.Y, Z: z}
	}
	return drawShapeRecord{
		X:        points[0].X,
		Y:        points[0].Y,
		Meta:     meta{},
		Opacity:  1,
		ID:       fmt.Sprintf("shape:%02d", s.Seq),
		Type:     "draw",
		Props: drawProps{
			Segments:   []segment{{Type: "free", Points: points}},
			Color:      styles.Color(s.Color),
			Fill:       "none",
			Dash:       "draw",
			Size:       styles.Size(s.ThicknessScale),
			IsComplete: true,
			Scale:      1,
		},
		ParentID: "page:page",
		Index:    index,
		TypeName: "shape",
	}
}

func textRecord(s export.Shape, styles *export.StyleMap, index string) textShapeRecord {
	ts := styles.Text(s.Style)
	return textShapeRecord{
		X:       s.X,
		Y:       s.Y,
		Opacity: 1,
		ID:      fmt.Sprintf("shape:%02d", s.Seq),
		Type:    "text",
		Props: textProps{
			Color:      "black",
			Size:       "m",
			FontSize:   ts.FontSize,
			FontWeight: ts.FontWeight,
			// rough width estimate, enough for the importer to lay
			// the block out before re-measuring
			W:         float64(len(s.Content)) * 10,
			Font:      "draw",
			TextAlign: "start",
			AutoSize:  true,
			Scale:     1,
			RichText: richText{
				Type: "doc",
				Content: []richTextParagraph{{
					Type:  "paragraph",
					Attrs: richTextAttrs{Dir: "auto"},
					Content: []richTextText{{
						Type: "text",
						Text: s.Content,
					}},
				}},
			},
		},
		ParentID: "page:page",
		Index:    index,
		TypeName: "shape",
	}
}
