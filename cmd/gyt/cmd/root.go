// Copyright © 2019 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/gyt/pkg/core"
	"github.com/oneconcern/gyt/pkg/dlogger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envConfigLocation overrides the location of the gyt CLI config file.
const envConfigLocation = "GYT_CONFIG"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gyt",
	Short: "Gyt tracks personal progress with a git-shaped workflow",
	Long: `Gyt tracks personal progress the way git tracks source: stage short
milestone notes as you work, bundle them into commits with a message,
then review your history and statistics.

State is kept as plain JSON documents in a .gyt directory, so a
repository is just a directory you can inspect, copy or version.
`,
}

var localConfig *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addLogLevelFlag(rootCmd)
	addRepoRootFlag(rootCmd)
}

// initConfig reads in the CLI config file and environment variables if set.
func initConfig() {
	viper.SetDefault("loglevel", dlogger.LogLevelNone)
	viper.SetDefault("root", ".")
	if os.Getenv(envConfigLocation) != "" {
		// Use config file from the environment.
		viper.SetConfigFile(os.Getenv(envConfigLocation))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.gyt")
		viper.SetConfigName("gyt")
	}
	viper.SetEnvPrefix("gyt")
	viper.AutomaticEnv() // read in environment variables that match

	// a missing config file is fine: flags and defaults apply
	_ = viper.ReadInConfig()

	var err error
	localConfig, err = newLocalConfig()
	if err != nil {
		wrapFatalln("read CLI config", err)
		return
	}
	localConfig.setGytParams(&gytFlags)
}

// getRepo builds the repository handle for the configured root directory.
func getRepo() *core.Repo {
	return core.New(gytFlags.root.dir,
		core.Logger(dlogger.MustGetLogger(gytFlags.root.logLevel)))
}

// ensureRepo fails with core.ErrNotInitialized unless the configured
// root holds an initialized repository.
func ensureRepo() (*core.Repo, error) {
	repo := getRepo()
	initialized, err := repo.IsInitialized()
	if err != nil {
		return nil, err
	}
	if !initialized {
		return nil, core.ErrNotInitialized
	}
	return repo, nil
}

// notARepo surfaces the precondition failure for every command but init.
func notARepo() {
	wrapFatalWithCodef(1, "Not a gyt repository. Run 'gyt init' first.")
}
