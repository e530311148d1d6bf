package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

// outputJSON prints v as indented JSON on stdout.
func outputJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

// loadCatalog loads every entity under root with the configured pattern.
func loadCatalog(root string) ([]catalog.Sourced, error) {
	return newLoader().Load(root)
}

// findEntity resolves a reference string against the loaded snapshot by
// canonical reference key.
func findEntity(reference, defaultKind string, entities []catalog.Sourced) (*catalog.Sourced, catalog.Ref) {
	ref := catalog.ParseRef(reference, defaultKind)
	key := ref.Canonical()
	for i := range entities {
		if entities[i].Entity.RefKey() == key {
			return &entities[i], ref
		}
	}
	return nil, ref
}
