package catalog

import "sort"

// Value is a semi-structured document value: the decoded form of a YAML
// scalar, sequence, or mapping. All accessors are shape-tolerant: a lookup
// against the wrong shape reports absence instead of failing, so callers can
// chain lookups over malformed input without error handling.
type Value struct {
	raw any
}

// NewValue wraps an already-decoded document value. Mappings may be keyed by
// string or by any (both occur depending on how the YAML was decoded).
func NewValue(raw any) Value {
	return Value{raw: raw}
}

// UnmarshalYAML captures the raw decoded document without imposing a schema.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v.raw = raw
	return nil
}

// MarshalYAML emits the underlying decoded value unchanged.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.raw, nil
}

// IsNil reports whether the value is absent or null.
func (v Value) IsNil() bool {
	return v.raw == nil
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any {
	return v.raw
}

// Get looks up a key in a mapping value. A non-mapping value or a missing
// key yields a nil Value.
func (v Value) Get(key string) Value {
	switch m := v.raw.(type) {
	case map[string]any:
		return Value{raw: m[key]}
	case map[any]any:
		return Value{raw: m[key]}
	default:
		return Value{}
	}
}

// Str looks up a key and returns its string value. ok is false when the key
// is absent or the value is not a string.
func (v Value) Str(key string) (string, bool) {
	return v.Get(key).AsStr()
}

// AsStr returns the value as a string when it is one.
func (v Value) AsStr() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// Seq returns the elements of a sequence value, or nil for any other shape.
func (v Value) Seq() []Value {
	arr, ok := v.raw.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(arr))
	for i, item := range arr {
		out[i] = Value{raw: item}
	}
	return out
}

// StrSeq returns the string elements of a sequence value, silently skipping
// non-string elements. Non-sequence values yield nil.
func (v Value) StrSeq() []string {
	var out []string
	for _, item := range v.Seq() {
		if s, ok := item.AsStr(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Keys returns the mapping keys in sorted order, or nil for non-mappings.
// Only string keys are reported.
func (v Value) Keys() []string {
	var keys []string
	switch m := v.raw.(type) {
	case map[string]any:
		for k := range m {
			keys = append(keys, k)
		}
	case map[any]any:
		for k := range m {
			if s, ok := k.(string); ok {
				keys = append(keys, s)
			}
		}
	default:
		return nil
	}
	sort.Strings(keys)
	return keys
}
