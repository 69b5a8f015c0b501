// Copyright © 2019 One Concern

package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	root struct {
		dir      string
		logLevel string
	}
	add struct {
		all  bool
		tags []string
	}
	commit struct {
		message string
	}
	log struct {
		limit int
	}
	stats struct {
		days int
	}
	push struct {
		remote string
	}
}

var gytFlags flagsT

func addLogLevelFlag(cmd *cobra.Command) string {
	const logLevel = "log-level"
	cmd.PersistentFlags().StringVar(&gytFlags.root.logLevel, logLevel, "none",
		"log level for the CLI (none, info, debug)")
	return logLevel
}

func addRepoRootFlag(cmd *cobra.Command) string {
	const root = "root"
	cmd.PersistentFlags().StringVar(&gytFlags.root.dir, root, ".",
		"directory holding the gyt repository")
	return root
}

func addAllFlag(cmd *cobra.Command) string {
	const all = "all"
	cmd.Flags().BoolVarP(&gytFlags.add.all, all, "a", false,
		"stage a default milestone for today")
	return all
}

func addTagsFlag(cmd *cobra.Command) string {
	const tag = "tag"
	cmd.Flags().StringSliceVarP(&gytFlags.add.tags, tag, "t", nil,
		"tag to attach to the milestone, repeatable")
	return tag
}

func addMessageFlag(cmd *cobra.Command) string {
	const message = "message"
	cmd.Flags().StringVarP(&gytFlags.commit.message, message, "m", "",
		"the commit message")
	return message
}

func addLimitFlag(cmd *cobra.Command) string {
	const limit = "limit"
	cmd.Flags().IntVarP(&gytFlags.log.limit, limit, "n", 10,
		"number of commits to show")
	return limit
}

func addDaysFlag(cmd *cobra.Command) string {
	const days = "days"
	cmd.Flags().IntVarP(&gytFlags.stats.days, days, "d", 30,
		"number of days to show stats for")
	return days
}

func addRemoteFlag(cmd *cobra.Command) string {
	const remote = "remote"
	cmd.Flags().StringVar(&gytFlags.push.remote, remote, "",
		"remote URL to push to, overrides remote.url from the config")
	return remote
}
