// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the staging area",
	Long:  `List the milestones currently staged for the next commit.`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}

		staged, err := repo.GetStagedMilestones(context.Background())
		if err != nil {
			wrapFatalln("read staging area", err)
			return
		}

		color.Set(color.Bold)
		infoLogger.Println("Gyt Status")
		color.Unset()

		if len(staged) > 0 {
			color.Set(color.FgGreen)
			infoLogger.Println("\nStaged milestones:")
			color.Unset()
			for i, milestone := range staged {
				infoLogger.Printf("  %d. %s", i+1, milestone.Message)
			}
		} else {
			color.Set(color.Faint)
			infoLogger.Println("\nNo milestones staged")
			color.Unset()
		}

		color.Set(color.Faint)
		infoLogger.Println("\nUse 'gyt add <message>' to stage milestones")
		infoLogger.Println(`Use 'gyt commit -m "message"' to commit staged milestones`)
		color.Unset()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
