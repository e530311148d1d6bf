package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/graph"
	"github.com/catwalk-tui/catwalk/internal/ui"
	"github.com/catwalk-tui/catwalk/internal/utils"
)

// lintResult is the JSON shape of the full lint run.
type lintResult struct {
	Entities int               `json:"entities"`
	Files    int               `json:"files"`
	Findings []lintEntityEntry `json:"findings"`
}

type lintEntityEntry struct {
	Ref        string   `json:"ref"`
	SourceFile string   `json:"sourceFile"`
	Problems   []string `json:"problems"`
}

var lintCmd = &cobra.Command{
	Use:     "lint [path]",
	GroupID: "views",
	Short:   "Validate the catalog and report problems",
	Long: `Validate every entity under the given path and report structural
problems and dangling references.

Checked per entity:
  - required metadata (name format, apiVersion prefix)
  - required spec fields for the entity kind
  - references to entities that do not exist in the catalog

Exits non-zero when any problem is found, so lint can gate CI.

Examples:
  catwalk lint                 # Lint the current directory
  catwalk lint ./services      # Lint a specific directory
  catwalk lint --json          # Machine-readable findings
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entities, err := loadCatalog(catalogRoot(args))
		if err != nil {
			return err
		}

		report := buildLintReport(entities)

		if jsonOutput {
			findings := make([]lintEntityEntry, 0, len(report.Entries))
			for _, e := range report.Entries {
				findings = append(findings, lintEntityEntry(e))
			}
			outputJSON(lintResult{
				Entities: report.Entities,
				Files:    report.Files,
				Findings: findings,
			})
		} else {
			cmd.Println(ui.RenderLintReport(report, ui.GetWidth()))
		}

		if !report.Clean() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

// buildLintReport combines load-time validation problems with dangling
// reference findings for every entity in the snapshot.
func buildLintReport(entities []catalog.Sourced) ui.LintReport {
	names := make([]string, 0, len(entities))
	files := make(map[string]struct{})
	for i := range entities {
		names = append(names, entities[i].Entity.Metadata.Name)
		files[entities[i].SourceFile] = struct{}{}
	}

	report := ui.LintReport{Entities: len(entities), Files: len(files)}

	for i := range entities {
		s := &entities[i]
		var problems []string
		for _, p := range s.Problems {
			problems = append(problems, fmt.Sprintf("%s: %s", p.Path, p.Message))
		}
		problems = append(problems, danglingRefs(s, entities, names)...)

		if len(problems) > 0 {
			report.Entries = append(report.Entries, ui.LintEntry{
				Ref:        s.Entity.RefKey(),
				SourceFile: s.SourceFile,
				Problems:   problems,
			})
		}
	}

	return report
}

// danglingRefs reports outgoing relationships whose target is not in the
// snapshot, suggesting a close name when a near-miss exists.
func danglingRefs(s *catalog.Sourced, entities []catalog.Sourced, names []string) []string {
	var out []string
	for _, edge := range graph.Build(s, entities).Outgoing {
		if edge.Node.Exists {
			continue
		}
		finding := fmt.Sprintf("%s reference %q not found in catalog",
			edge.Kind.Label(), edge.Node.DisplayName)
		if match, ok := utils.ClosestMatch(edge.Node.DisplayName, names, 2); ok {
			finding += fmt.Sprintf(" (did you mean %q?)", match)
		}
		out = append(out, finding)
	}
	return out
}
