package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"

	"github.com/rmtools/rmexport/scene"
)

func openCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "open",
		Help: "load a parsed page (scene tree json)",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing file name"))
				return
			}

			fileName := c.Args[0]
			file, err := os.Open(fileName)
			if err != nil {
				c.Err(fmt.Errorf("can't open %s: %w", fileName, err))
				return
			}
			defer file.Close()

			tree, err := scene.ReadTree(file)
			if err != nil {
				c.Err(err)
				return
			}

			ctx.fileName = fileName
			ctx.tree = tree
			c.Println(fmt.Sprintf("loaded: [%s]", fileName))
		},
	}
}
