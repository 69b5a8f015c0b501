// Copyright © 2019 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/gyt/pkg/core"
	"github.com/oneconcern/gyt/pkg/errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push commits to a remote (gythub)",
	Long: `Push the commit history to a remote gythub server.

The remote URL comes from the --remote flag or from the remote.url
configuration entry. The transfer itself is not implemented yet: the
command validates the remote and reports what it would send.
`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}
		ctx := context.Background()

		remoteURL, err := repo.RemoteURL(ctx, gytFlags.push.remote)
		if err != nil {
			if errors.Is(err, core.ErrNoRemote) {
				wrapFatalWithCodef(1, "No remote configured. Use 'gyt config remote.url <url>' first.")
				return
			}
			wrapFatalln("resolve remote", err)
			return
		}

		commits, err := repo.GetCommits(ctx)
		if err != nil {
			wrapFatalln("read commit history", err)
			return
		}
		if len(commits) == 0 {
			color.Set(color.FgYellow)
			infoLogger.Println("No commits to push.")
			color.Unset()
			return
		}

		color.Set(color.FgYellow)
		infoLogger.Printf("Pushing %d commit(s) to %s...", len(commits), remoteURL)
		color.Unset()
		color.Set(color.Faint)
		infoLogger.Println("Note: remote push is not implemented yet. This will sync to gythub when available.")
		color.Unset()
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	addRemoteFlag(pushCmd)
}
