// Copyright © 2019 One Concern

package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show milestone statistics",
	Long:  `Summarize the commits and milestones recorded over a trailing number of days.`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}
		ctx := context.Background()

		commits, err := repo.GetCommits(ctx)
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

		stats, err := repo.GetStats(ctx, gytFlags.stats.days)
		if err != nil {
			wrapFatalln("compute stats", err)
			return
		}

		color.Set(color.Bold)
		infoLogger.Printf("Stats for last %d days", stats.Days)
		color.Unset()
		printMetric("Total Commits", fmt.Sprintf("%d", stats.Commits))
		printMetric("Total Milestones", fmt.Sprintf("%d", stats.Milestones))
		if stats.Commits > 0 {
			printMetric("Avg Milestones/Commit", fmt.Sprintf("%.1f", stats.Average()))
		}
	},
}

func printMetric(name, value string) {
	color.Set(color.FgCyan)
	fmt.Printf("%-22s", name)
	color.Unset()
	color.Set(color.FgGreen)
	infoLogger.Println(" " + value)
	color.Unset()
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addDaysFlag(statsCmd)
}
