// Copyright © 2019 One Concern

package cmd

import (
	"context"
	"encoding/json"

	"github.com/oneconcern/gyt/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// configCmd gets or sets repository configuration values, addressed by
// dotted keys the way git config keys are.
var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set repository configuration values",
	Long: `Get or set repository configuration values.

Without arguments, prints the full configuration. With a dotted key,
prints the value stored under it. With a key and a value, stores the
value, creating intermediate sections as needed.
`,
	Example: `# show the full configuration
% gyt config

# read one value
% gyt config user.name

# set your identity
% gyt config user.name "Fred"
% gyt config user.email "fred@example.com"

# configure the push target
% gyt config remote.url https://gythub.example.com/fred`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		repo, err := ensureRepo()
		if err != nil {
			notARepo()
			return
		}
		ctx := context.Background()

		switch len(args) {
		case 2:
			if err := repo.SetConfig(ctx, args[0], args[1]); err != nil {
				wrapFatalln("set config", err)
				return
			}
			color.Set(color.FgGreen)
			infoLogger.Printf("Set %s = %s", args[0], args[1])
			color.Unset()
		case 1:
			cfg, err := repo.GetConfig(ctx)
			if err != nil {
				wrapFatalln("read config", err)
				return
			}
			infoLogger.Printf("%s = %s", args[0], renderConfigValue(cfg.Get(args[0])))
		default:
			cfg, err := repo.GetConfig(ctx)
			if err != nil {
				wrapFatalln("read config", err)
				return
			}
			b, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				wrapFatalln("render config", err)
				return
			}
			infoLogger.Println(string(b))
		}
	},
}

// renderConfigValue prints string leaves bare and sub-mappings as
// compact JSON, so an empty mapping shows as {}.
func renderConfigValue(v interface{}) string {
	switch node := v.(type) {
	case config.Config, map[string]interface{}:
		b, err := json.Marshal(node)
		if err != nil {
			return "{}"
		}
		return string(b)
	default:
		return cast.ToString(v)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
