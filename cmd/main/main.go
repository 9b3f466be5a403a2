package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pysugar/invoker/cmd/base"
	_ "github.com/pysugar/invoker/cmd/subcmds"
)

var (
	versionCmd = &cobra.Command{
		Use:   `version`,
		Short: "Show current version of Invoker",
		Long:  `Version prints the build information for Invoker executables`,
		Run: func(cmd *cobra.Command, args []string) {
			version := base.VersionStatement()
			for _, s := range version {
				fmt.Println(s)
			}
		},
	}
)

func main() {
	base.AddSubCommands(versionCmd)

	base.Run()
}
