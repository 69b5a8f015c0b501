// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/gyt/pkg/core"
	"github.com/oneconcern/gyt/pkg/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit the staged milestones",
	Long: `Create a commit bundling every currently staged milestone under the
given message, then clear the staging area.

Committing with an empty staging area is an error and leaves the
history untouched.
`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}

		c, err := repo.CommitStaged(context.Background(), gytFlags.commit.message)
		if err != nil {
			if errors.Is(err, core.ErrEmptyStaging) {
				wrapFatalWithCodef(1, "No milestones staged. Use 'gyt add' first.")
				return
			}
			wrapFatalln("commit staged milestones", err)
			return
		}

		color.Set(color.FgGreen)
		infoLogger.Printf("Committed %d milestone(s): %s", len(c.Milestones), c.Message)
		color.Unset()
		color.Set(color.Faint)
		infoLogger.Println("Commit hash:", c.CommitHash)
		color.Unset()
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
	msg := addMessageFlag(commitCmd)
	if err := commitCmd.MarkFlagRequired(msg); err != nil {
		logFatalln(err)
	}
}
