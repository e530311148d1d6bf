package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/ui"
	"github.com/catwalk-tui/catwalk/internal/validate"
)

// scaffoldInput holds the raw answers from the init form.
type scaffoldInput struct {
	Name        string
	Kind        string
	Owner       string
	Type        string
	Lifecycle   string
	Description string
}

var initCmd = &cobra.Command{
	Use:     "init [path]",
	GroupID: "setup",
	Short:   "Create a catalog manifest in the given directory",
	Long: `Create a catalog-info.yaml in the given directory (default: current
directory), asking for the entity fields interactively.

With flags set, the form is skipped and the manifest is written directly:

  catwalk init --name auth-service --kind component --owner team-a
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := catalogRoot(args)
		force, _ := cmd.Flags().GetBool("force")

		input := scaffoldInput{}
		input.Name, _ = cmd.Flags().GetString("name")
		input.Kind, _ = cmd.Flags().GetString("kind")
		input.Owner, _ = cmd.Flags().GetString("owner")
		input.Type, _ = cmd.Flags().GetString("type")
		input.Lifecycle, _ = cmd.Flags().GetString("lifecycle")

		if input.Name == "" {
			if err := runScaffoldForm(&input); err != nil {
				return err
			}
		}

		entity, problems := buildScaffold(input)
		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "Error: %s: %s\n", p.Path, p.Message)
			}
			return fmt.Errorf("refusing to write an invalid manifest")
		}

		path := filepath.Join(dir, "catalog-info.yaml")
		if _, err := os.Stat(path); err == nil && !force {
			if !ui.PromptYesNo(fmt.Sprintf("%s already exists. Overwrite?", path), false) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		data, err := yaml.Marshal(entity)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}

		fmt.Printf("Created %s (%s)\n", path, entity.RefKey())
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing manifest without asking")
	initCmd.Flags().String("name", "", "Entity name (skips the form)")
	initCmd.Flags().String("kind", "component", "Entity kind")
	initCmd.Flags().String("owner", "", "Owning group or user")
	initCmd.Flags().String("type", "service", "Entity type (components and resources)")
	initCmd.Flags().String("lifecycle", "production", "Lifecycle stage (components)")
	rootCmd.AddCommand(initCmd)
}

func runScaffoldForm(input *scaffoldInput) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Machine name, e.g. auth-service").
				Value(&input.Name),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Component", "component"),
					huh.NewOption("API", "api"),
					huh.NewOption("System", "system"),
					huh.NewOption("Domain", "domain"),
					huh.NewOption("Resource", "resource"),
					huh.NewOption("Group", "group"),
					huh.NewOption("User", "user"),
				).
				Value(&input.Kind),
			huh.NewInput().
				Title("Owner").
				Description("Owning group or user, e.g. team-a").
				Value(&input.Owner),
			huh.NewSelect[string]().
				Title("Lifecycle").
				Options(
					huh.NewOption("Production", "production"),
					huh.NewOption("Experimental", "experimental"),
					huh.NewOption("Deprecated", "deprecated"),
				).
				Value(&input.Lifecycle),
			huh.NewInput().
				Title("Description").
				Value(&input.Description),
		),
	)
	return form.Run()
}

// buildScaffold converts form answers into an entity and validates it so
// init never writes a manifest that lint would reject.
func buildScaffold(input scaffoldInput) (catalog.Entity, []catalog.ValidationError) {
	spec := map[string]any{}
	if input.Owner != "" {
		spec["owner"] = input.Owner
	}
	kind := catalog.ParseKind(input.Kind)
	switch kind {
	case catalog.KindComponent:
		spec["type"] = defaultStr(input.Type, "service")
		spec["lifecycle"] = defaultStr(input.Lifecycle, "production")
	case catalog.KindResource:
		spec["type"] = defaultStr(input.Type, "database")
	case catalog.KindGroup:
		spec["type"] = defaultStr(input.Type, "team")
	}

	entity := catalog.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       kind,
		Metadata: catalog.Metadata{
			Name:        strings.TrimSpace(input.Name),
			Description: strings.TrimSpace(input.Description),
		},
		Spec: catalog.NewValue(spec),
	}
	return entity, validate.Entity(&entity)
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
