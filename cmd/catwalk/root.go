package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/catwalk-tui/catwalk/internal/app"
	"github.com/catwalk-tui/catwalk/internal/config"
	"github.com/catwalk-tui/catwalk/internal/debug"
	"github.com/catwalk-tui/catwalk/internal/loader"
	"github.com/catwalk-tui/catwalk/internal/tui"
	"github.com/catwalk-tui/catwalk/internal/ui"
	"github.com/catwalk-tui/catwalk/internal/watcher"
)

var (
	jsonOutput  bool
	noColor     bool
	patternFlag string
	themeFlag   string
	noWatch     bool
)

var rootCmd = &cobra.Command{
	Use:   "catwalk [path]",
	Short: "Terminal browser for Backstage software catalogs",
	Long: `Browse a Backstage software catalog from the terminal.

catwalk scans a directory tree for catalog manifest files, builds the
entity hierarchy (domains, systems, components) and lets you explore
entities, their relationships and their documentation interactively.

Examples:
  catwalk                      # Browse the catalog under the current directory
  catwalk ./services           # Browse a specific directory
  catwalk list                 # Print all entities as a table
  catwalk graph auth-service   # Show relationships for one entity
  catwalk lint                 # Validate the catalog and report problems
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize config: %v\n", err)
		}
		// Flags override config file and environment.
		if cmd.Flags().Changed("pattern") {
			config.Set("pattern", patternFlag)
		}
		if cmd.Flags().Changed("theme") {
			config.Set("theme", themeFlag)
		}
		if noWatch {
			config.Set("watch", false)
		}
		if jsonOutput {
			config.Set("json", true)
		}
		if noColor {
			config.Set("no-color", true)
		}
		if config.GetBool("no-color") || !ui.ShouldUseColor() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		if p := config.GetString("debug-log"); p != "" {
			debug.SetFile(p)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowser(catalogRoot(args))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&patternFlag, "pattern", "", "Catalog file name pattern (default \"catalog-info.{yaml,yml}\")")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Markdown theme: dark, light or auto")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when catalog files change")

	rootCmd.AddGroup(
		&cobra.Group{ID: "views", Title: "Views:"},
		&cobra.Group{ID: "setup", Title: "Setup:"},
	)
}

// catalogRoot resolves the positional path argument, defaulting to the
// current directory.
func catalogRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func newLoader() *loader.Loader {
	l := loader.New()
	if p := config.GetString("pattern"); p != "" {
		l.Pattern = p
	}
	l.Exclude = config.GetStringSlice("exclude")
	return l
}

func runBrowser(root string) error {
	l := newLoader()
	// Warnings would corrupt the alternate screen once the TUI starts.
	l.Warn = debug.Writer()

	a, err := app.New(root, l)
	if err != nil {
		return err
	}

	var reloads chan struct{}
	if config.GetBool("watch") {
		reloads = make(chan struct{}, 1)
		w := watcher.New(root, l.Matches, func() {
			select {
			case reloads <- struct{}{}:
			default:
			}
		}).WithDebounce(config.GetDuration("watch-debounce"))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := w.Watch(ctx); err != nil && ctx.Err() == nil {
				debug.Logf("watcher stopped: %v", err)
			}
		}()
	}

	theme := ui.DetectTheme(config.GetString("theme"))
	return tui.Run(a, theme, reloads)
}
