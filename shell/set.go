package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/rmtools/rmexport/convert"
)

func setCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "set",
		Help: "set an option: set format|width|height <value>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: set format|width|height <value>"))
				return
			}

			key, value := c.Args[0], c.Args[1]
			switch key {
			case "format":
				for _, f := range convert.Formats() {
					if f == value {
						ctx.opts.Format = value
						c.Println(fmt.Sprintf("format = %s", value))
						return
					}
				}
				c.Err(fmt.Errorf("unknown format %q, expected one of: %s",
					value, strings.Join(convert.Formats(), ", ")))
			case "width", "height":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					c.Err(fmt.Errorf("bad %s %q", key, value))
					return
				}
				if key == "width" {
					ctx.opts.Width = n
				} else {
					ctx.opts.Height = n
				}
				c.Println(fmt.Sprintf("%s = %d", key, n))
			default:
				c.Err(fmt.Errorf("unknown option %q", key))
			}
		},
	}
}
