// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/gyt/pkg/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// defaultMilestoneMessage is staged by "gyt add --all" and "gyt add .".
const defaultMilestoneMessage = "Daily progress"

var addCmd = &cobra.Command{
	Use:   "add [message]",
	Short: "Add a milestone to the staging area",
	Long: `Add a milestone to the staging area.

The milestone message is given as the single argument. Passing --all
(or the literal message ".") stages a default "Daily progress"
milestone instead.
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}

		var milestone model.Milestone
		switch {
		case gytFlags.add.all || (len(args) == 1 && args[0] == "."):
			milestone = model.NewMilestone(defaultMilestoneMessage)
		case len(args) == 1 && args[0] != "":
			milestone = model.NewMilestone(args[0], model.MilestoneTags(gytFlags.add.tags...))
		default:
			wrapFatalWithCodef(1, "Please provide a milestone message or use --all/-a")
			return
		}

		if err := repo.AddMilestone(context.Background(), milestone); err != nil {
			wrapFatalln("stage milestone", err)
			return
		}
		color.Set(color.FgGreen)
		infoLogger.Println("Added milestone:", milestone.Message)
		color.Unset()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addAllFlag(addCmd)
	addTagsFlag(addCmd)
}
