package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/config"
	"github.com/catwalk-tui/catwalk/internal/graph"
	"github.com/catwalk-tui/catwalk/internal/ui"
	"github.com/catwalk-tui/catwalk/internal/utils"
)

var graphCmd = &cobra.Command{
	Use:     "graph <ref> [path]",
	GroupID: "views",
	Short:   "Show relationships for one entity",
	Long: `Show the incoming and outgoing relationships of a single entity.

The reference takes the form [kind:][namespace/]name. The kind defaults
to the default-kind config value (component unless changed), the
namespace to "default".

Examples:
  catwalk graph auth-service             # component:default/auth-service
  catwalk graph api:auth-api             # explicit kind
  catwalk graph group:team-a ./services  # search a specific directory
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := loadCatalog(catalogRoot(args[1:]))
		if err != nil {
			return err
		}

		focal, ref := findEntity(args[0], config.GetString("default-kind"), entities)
		if focal == nil {
			return refNotFoundError(ref, entities)
		}

		g := graph.Build(focal, entities)
		if jsonOutput {
			outputJSON(g)
			return nil
		}
		cmd.Println(ui.GraphTree(g))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

// refNotFoundError builds the lookup failure, suggesting a close name
// when a near-miss exists in the snapshot.
func refNotFoundError(ref catalog.Ref, entities []catalog.Sourced) error {
	names := make([]string, 0, len(entities))
	for i := range entities {
		names = append(names, entities[i].Entity.Metadata.Name)
	}
	if match, ok := utils.ClosestMatch(ref.Name, names, 2); ok {
		return fmt.Errorf("entity %q not found (did you mean %q?)", ref.Canonical(), match)
	}
	return fmt.Errorf("entity %q not found", ref.Canonical())
}
