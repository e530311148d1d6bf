// Package validate checks catalog entities against the structural rules
// each kind requires before it can be browsed.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

var check *validator.Validate

func init() {
	check = validator.New()
	_ = check.RegisterValidation("dnslabel", validateDNSLabel)
}

// metadataRules mirrors the metadata fields that every entity must carry.
type metadataRules struct {
	Name       string `validate:"required,max=63,dnslabel"`
	APIVersion string `validate:"required,startswith=backstage.io/"`
}

// validateDNSLabel accepts lowercase alphanumerics, '-', '_' and '.'.
// Backstage names are looser than strict RFC 1123 labels but never
// contain whitespace or path separators.
func validateDNSLabel(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}

// requiredSpecFields lists, per kind, the spec keys that must be present
// and non-empty. Kinds absent from the table have no spec requirements.
var requiredSpecFields = map[catalog.Kind][]string{
	catalog.KindComponent: {"type", "lifecycle", "owner"},
	catalog.KindAPI:       {"type", "lifecycle", "owner", "definition"},
	catalog.KindResource:  {"type", "owner"},
	catalog.KindSystem:    {"owner"},
	catalog.KindDomain:    {"owner"},
	catalog.KindGroup:     {"type"},
}

// Entity returns every rule the entity breaks. An empty slice means the
// entity is well-formed for its kind. Unknown kinds are reported once
// and not checked further.
func Entity(e *catalog.Entity) []catalog.ValidationError {
	var problems []catalog.ValidationError

	rules := metadataRules{
		Name:       e.Metadata.Name,
		APIVersion: e.APIVersion,
	}
	if err := check.Struct(rules); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				problems = append(problems, metadataProblem(fe))
			}
		} else {
			problems = append(problems, catalog.ValidationError{
				Path:    "/",
				Message: err.Error(),
			})
		}
	}

	if e.Kind == catalog.KindUnknown {
		problems = append(problems, catalog.ValidationError{
			Path:    "/kind",
			Message: "unrecognized entity kind",
		})
		return problems
	}

	for _, field := range requiredSpecFields[e.Kind] {
		if field == "definition" {
			// API definitions may be any YAML shape, presence is enough.
			if v := e.Spec.Get(field); !v.IsNil() {
				continue
			}
		} else if s, ok := e.Spec.Str(field); ok && strings.TrimSpace(s) != "" {
			continue
		}
		problems = append(problems, catalog.ValidationError{
			Path:    "/spec/" + field,
			Message: fmt.Sprintf("%q is required for kind %s", field, e.Kind),
		})
	}

	return problems
}

func metadataProblem(fe validator.FieldError) catalog.ValidationError {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return catalog.ValidationError{Path: "/metadata/name", Message: "name is required"}
		}
		return catalog.ValidationError{
			Path:    "/metadata/name",
			Message: fmt.Sprintf("invalid name %q", fe.Value()),
		}
	case "APIVersion":
		return catalog.ValidationError{
			Path:    "/apiVersion",
			Message: fmt.Sprintf("unsupported apiVersion %q", fe.Value()),
		}
	}
	return catalog.ValidationError{
		Path:    "/metadata",
		Message: fe.Error(),
	}
}
