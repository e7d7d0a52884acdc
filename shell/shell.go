// Package shell is an interactive inspector around the converters:
// open a parsed page, poke at its contents, export it.
package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/rmtools/rmexport/config"
	"github.com/rmtools/rmexport/scene"
)

type ShellCtxt struct {
	fileName string
	tree     *scene.Tree
	opts     *config.Options
}

// Run starts the interactive shell.
func Run(opts *config.Options) {
	if opts == nil {
		opts = config.Default()
	}
	ctx := &ShellCtxt{opts: opts}

	shell := ishell.New()
	shell.Println("rmexport shell, type 'help' for a list of commands")
	shell.SetPrompt("> ")

	shell.AddCmd(openCmd(ctx))
	shell.AddCmd(infoCmd(ctx))
	shell.AddCmd(exportCmd(ctx))
	shell.AddCmd(setCmd(ctx))
	shell.AddCmd(versionCmd())

	shell.Run()
}
