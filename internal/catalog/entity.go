// Package catalog provides the core entity model for catwalk: entity kinds,
// metadata, the free-form spec document, reference parsing, and the entity
// index used for reference validation.
//
// Entity references follow the format `[<kind>:][<namespace>/]<name>`. Parsing
// is total: any input string produces a resolved reference, with missing parts
// filled from a caller-supplied default kind and the "default" namespace.
package catalog

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a catalog entity.
type Kind string

// The eight known catalog kinds. Anything else decodes as KindUnknown.
const (
	KindComponent Kind = "Component"
	KindAPI       Kind = "API"
	KindResource  Kind = "Resource"
	KindSystem    Kind = "System"
	KindDomain    Kind = "Domain"
	KindGroup     Kind = "Group"
	KindUser      Kind = "User"
	KindLocation  Kind = "Location"
	KindUnknown   Kind = "Unknown"
)

// ParseKind maps a raw kind string to a Kind, case-insensitively.
// Unrecognized values map to KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "component":
		return KindComponent
	case "api":
		return KindAPI
	case "resource":
		return KindResource
	case "system":
		return KindSystem
	case "domain":
		return KindDomain
	case "group":
		return KindGroup
	case "user":
		return KindUser
	case "location":
		return KindLocation
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	if k == "" {
		return string(KindUnknown)
	}
	return string(k)
}

// UnmarshalYAML accepts any casing plus the "API" alias; unknown kinds
// degrade to KindUnknown rather than failing the document.
func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*k = ParseKind(raw)
	return nil
}

// Link is an external link attached to entity metadata.
type Link struct {
	URL   string `yaml:"url,omitempty"`
	Title string `yaml:"title,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

// Metadata holds the identifying and descriptive fields of an entity.
type Metadata struct {
	Name        string            `yaml:"name"`
	Title       string            `yaml:"title,omitempty"`
	Namespace   string            `yaml:"namespace,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Links       []Link            `yaml:"links,omitempty"`
}

// Entity is a single parsed catalog entity.
type Entity struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       Kind     `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Value    `yaml:"spec"`
}

// DisplayName returns the title when present, otherwise the name.
func (e *Entity) DisplayName() string {
	if e.Metadata.Title != "" {
		return e.Metadata.Title
	}
	return e.Metadata.Name
}

// SpecStr looks up a string-valued spec field. ok is false when the field is
// absent or not a string.
func (e *Entity) SpecStr(key string) (string, bool) {
	return e.Spec.Str(key)
}

// Common spec field accessors.

func (e *Entity) System() (string, bool)    { return e.SpecStr("system") }
func (e *Entity) Domain() (string, bool)    { return e.SpecStr("domain") }
func (e *Entity) Owner() (string, bool)     { return e.SpecStr("owner") }
func (e *Entity) Lifecycle() (string, bool) { return e.SpecStr("lifecycle") }
func (e *Entity) Type() (string, bool)      { return e.SpecStr("type") }

// RefKey returns the canonical reference key for this entity:
// "kind:namespace/name" with the namespace defaulting to "default".
func (e *Entity) RefKey() string {
	ns := e.Metadata.Namespace
	if ns == "" {
		ns = "default"
	}
	return fmt.Sprintf("%s:%s/%s", strings.ToLower(e.Kind.String()), ns, e.Metadata.Name)
}

// ValidationError describes a single structural problem found in an entity.
// Problems never prevent an entity from loading; they travel with it.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Sourced pairs an entity with the file it was parsed from and any
// validation problems recorded during load.
type Sourced struct {
	Entity     Entity
	SourceFile string
	Problems   []ValidationError
}

// NewSourced wraps an entity with its source file.
func NewSourced(e Entity, sourceFile string) Sourced {
	return Sourced{Entity: e, SourceFile: sourceFile}
}

// WithProblems attaches validation problems and returns the wrapper.
func (s Sourced) WithProblems(problems []ValidationError) Sourced {
	s.Problems = problems
	return s
}
