package shell

import (
	"github.com/abiosoft/ishell"
)

// Version is stamped by the build; the default marks dev builds.
var Version = "dev"

func versionCmd() *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "print the tool version",
		Func: func(c *ishell.Context) {
			c.Println(Version)
		},
	}
}
