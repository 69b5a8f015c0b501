package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configGen = &cobra.Command{
	Aliases: []string{"gen"},
	Use:     "generate",
	Short:   "Create a local CLI config file",
	Long: `Creates a local CLI config file holding flags that do not change across
runs, like the log level or the repository root directory.

	By default, this configuration file is placed in ` + configFileLocation(false) + `.

	Use the ` + envConfigLocation + ` environment variable to change this default target.
	`,
	Example: `# remember a verbose log level
% gyt config generate --log-level info

# track a repository outside the working directory
% gyt config generate --root ~/progress`,
	Run: func(cmd *cobra.Command, args []string) {
		local := CLIConfig{
			LogLevel: gytFlags.root.logLevel,
			Root:     gytFlags.root.dir,
		}

		file := configFileLocation(true)

		if ext := filepath.Ext(file); ext != ".yaml" {
			infoLogger.Printf("warning: the generated config file will contain a yaml document, but the file extension is %q", ext)
		}
		o, err := local.MarshalConfig()
		if err != nil {
			wrapFatalln("could not serialize config to yaml", err)
			return
		}

		err = os.MkdirAll(filepath.Dir(file), 0777)
		if err != nil && !os.IsExist(err) {
			wrapFatalln("could not create directory to hold config "+filepath.Dir(file), err)
			return
		}

		if err = ioutil.WriteFile(file, o, 0600); err != nil {
			wrapFatalln("error writing config file "+file, err)
			return
		}

		infoLogger.Printf("config file created in %s", file)
	},
}

func init() {
	configCmd.AddCommand(configGen)
}
