package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/rmtools/rmexport/convert"
)

func exportCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "export",
		Help: "export the loaded page: export [format] [output]",
		Func: func(c *ishell.Context) {
			if ctx.tree == nil {
				c.Err(errors.New("no page loaded, use 'open' first"))
				return
			}

			opts := *ctx.opts
			if len(c.Args) > 0 {
				opts.Format = c.Args[0]
			}

			outputName := ""
			if len(c.Args) > 1 {
				outputName = c.Args[1]
			} else {
				nameOnly := strings.TrimSuffix(ctx.fileName, filepath.Ext(ctx.fileName))
				outputName = nameOnly + "." + convert.Extension(opts.Format)
			}

			file, err := os.Create(outputName)
			if err != nil {
				c.Err(fmt.Errorf("can't create %s: %w", outputName, err))
				return
			}
			defer file.Close()

			if err := convert.WriteTo(file, ctx.tree, &opts); err != nil {
				c.Err(err)
				return
			}
			c.Println(fmt.Sprintf("exported: [%s]", outputName))
		},
	}
}
