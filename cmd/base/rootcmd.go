package base

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "invoker",
	Short: "function worker",
	Long:  "A function worker answering POST /invoke for the invocation platform",
	// Run prints the error itself.
	SilenceErrors: true,
}

var defaultCommand string

func AddSubCommands(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// SetDefaultCommand names the subcommand run when the binary is started without arguments.
func SetDefaultCommand(name string) {
	defaultCommand = name
}

func Run() {
	if len(os.Args) == 1 && defaultCommand != "" {
		rootCmd.SetArgs([]string{defaultCommand})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
