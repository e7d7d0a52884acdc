package shell

import (
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/rmtools/rmexport/scene"
)

func infoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "info",
		Help: "show contents of the loaded page",
		Func: func(c *ishell.Context) {
			if ctx.tree == nil {
				c.Err(errors.New("no page loaded, use 'open' first"))
				return
			}

			groups, strokes, points := 0, 0, 0
			ctx.tree.Walk(func(item scene.Item) {
				switch it := item.(type) {
				case *scene.Group:
					groups++
				case *scene.Stroke:
					strokes++
					points += len(it.Points)
				}
			})

			c.Printf("file:    %s\n", ctx.fileName)
			c.Printf("groups:  %d\n", groups)
			c.Printf("strokes: %d (%d points)\n", strokes, points)
			if text := ctx.tree.RootText; text != nil {
				c.Printf("text:    %d paragraphs\n", len(text.Document.Paragraphs))
			} else {
				c.Println("text:    none")
			}
		},
	}
}
