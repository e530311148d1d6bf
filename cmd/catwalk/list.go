package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/ui"
)

// listEntityResult is the JSON shape for one listed entity.
type listEntityResult struct {
	Ref        string `json:"ref"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Owner      string `json:"owner,omitempty"`
	System     string `json:"system,omitempty"`
	Lifecycle  string `json:"lifecycle,omitempty"`
	SourceFile string `json:"sourceFile"`
	Problems   int    `json:"problems"`
}

var listCmd = &cobra.Command{
	Use:     "list [path]",
	GroupID: "views",
	Short:   "List catalog entities as a table",
	Long: `List every entity discovered under the given path (default: current
directory), one row per entity.

Examples:
  catwalk list                     # All entities
  catwalk list ./services          # Entities under a directory
  catwalk list --kind component    # Only components
  catwalk list --owner team-a      # Only entities owned by team-a
  catwalk list --json              # Machine-readable output
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kindFilter, _ := cmd.Flags().GetString("kind")
		ownerFilter, _ := cmd.Flags().GetString("owner")

		entities, err := loadCatalog(catalogRoot(args))
		if err != nil {
			return err
		}
		entities = filterEntities(entities, kindFilter, ownerFilter)

		if jsonOutput {
			results := make([]listEntityResult, 0, len(entities))
			for i := range entities {
				results = append(results, toListResult(&entities[i]))
			}
			outputJSON(results)
			return nil
		}

		cmd.Println(ui.EntityTable(entities, ui.GetWidth()))
		return nil
	},
}

func init() {
	listCmd.Flags().String("kind", "", "Only show entities of this kind")
	listCmd.Flags().String("owner", "", "Only show entities owned by this group or user")
	rootCmd.AddCommand(listCmd)
}

func filterEntities(entities []catalog.Sourced, kind, owner string) []catalog.Sourced {
	if kind == "" && owner == "" {
		return entities
	}
	var out []catalog.Sourced
	for _, s := range entities {
		if kind != "" && !strings.EqualFold(s.Entity.Kind.String(), kind) {
			continue
		}
		if owner != "" && !ownerMatches(&s.Entity, owner) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ownerMatches accepts both bare names and full references, so
// "--owner team-a" matches spec.owner values like "group:team-a".
func ownerMatches(e *catalog.Entity, owner string) bool {
	raw, ok := e.Owner()
	if !ok {
		return false
	}
	if strings.EqualFold(raw, owner) {
		return true
	}
	have := catalog.ParseRef(raw, "group")
	want := catalog.ParseRef(owner, "group")
	return strings.EqualFold(have.Canonical(), want.Canonical())
}

func toListResult(s *catalog.Sourced) listEntityResult {
	r := listEntityResult{
		Ref:        s.Entity.RefKey(),
		Kind:       s.Entity.Kind.String(),
		Name:       s.Entity.Metadata.Name,
		Title:      s.Entity.Metadata.Title,
		SourceFile: s.SourceFile,
		Problems:   len(s.Problems),
	}
	if owner, ok := s.Entity.Owner(); ok {
		r.Owner = owner
	}
	if system, ok := s.Entity.System(); ok {
		r.System = system
	}
	if lifecycle, ok := s.Entity.Lifecycle(); ok {
		r.Lifecycle = lifecycle
	}
	return r
}
