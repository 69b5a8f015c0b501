// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gyt repository",
	Long: `Initialize a new gyt repository in the root directory.

Creates the .gyt state directory with an empty staging area, an empty
commit history and a default configuration. Running init on an already
initialized repository is safe and changes nothing.
`,
	Run: func(cmd *cobra.Command, args []string) {
		created, err := getRepo().Initialize(context.Background())
		if err != nil {
			wrapFatalln("initialize repository", err)
			return
		}
		if created {
			color.Set(color.FgGreen)
			infoLogger.Println("Initialized empty gyt repository in .gyt/")
			color.Unset()
		} else {
			color.Set(color.FgYellow)
			infoLogger.Println("Repository already initialized.")
			color.Unset()
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
