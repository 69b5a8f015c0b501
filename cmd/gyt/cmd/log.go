// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show commit history",
	Long:  `Display the most recent commits with their messages and milestones, newest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}

		commits, err := repo.Log(context.Background(), gytFlags.log.limit)
		if err != nil {
			wrapFatalln("read commit history", err)
			return
		}
		if len(commits) == 0 {
			color.Set(color.FgYellow)
			infoLogger.Println("No commits yet.")
			color.Unset()
			return
		}

		for _, c := range commits {
			color.Set(color.FgYellow)
			infoLogger.Println("\ncommit", c.CommitHash)
			color.Unset()
			infoLogger.Println("Date:  ", c.Timestamp.Format("2006-01-02 15:04:05"))
			infoLogger.Printf("\n    %s\n", c.Message)
			for _, milestone := range c.Milestones {
				infoLogger.Println("    •", milestone.Message)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	addLimitFlag(logCmd)
}
