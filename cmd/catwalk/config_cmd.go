package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/catwalk-tui/catwalk/internal/config"
)

var configCmd = &cobra.Command{
	Use:     "config",
	GroupID: "setup",
	Short:   "Show the effective configuration",
	Long: `Show the effective configuration after merging defaults, the config
file and CATWALK_* environment variables.

Config is read from the nearest .catwalk/config.yaml walking up from the
current directory, falling back to ~/.config/catwalk/config.yaml.

Keys:
  pattern         Catalog file name pattern
  exclude         Extra directory names skipped during discovery
  theme           Markdown theme (dark, light, auto)
  watch           Reload when catalog files change
  watch-debounce  Delay before reloading after a change
  default-kind    Kind assumed for bare entity references
  debug-log       Path of the diagnostic log file
`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := config.AllSettings()
		if jsonOutput {
			outputJSON(settings)
			return
		}
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %v\n", k, settings[k])
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
