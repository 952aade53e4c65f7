// Package manifest provides read-modify-write access to JSON configuration
// documents (package manifests, the graph registry) with the merge semantics
// the synthesizer needs: shallow overwrite at the top level, key-wise union
// inside dependency-style nested objects.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileSystem defines the minimal filesystem interface needed for manifest
// round-trips. This is a consumer-defined interface; fsutil.OSFileSystem
// satisfies it.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// Document is a parsed JSON object held as a generic map.
type Document struct {
	data map[string]any
}

// Load parses the JSON document at path.
func Load(fs FileSystem, path string) (*Document, error) {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &Document{data: data}, nil
}

// New creates an empty document.
func New() *Document {
	return &Document{data: map[string]any{}}
}

// Save writes the document back to path atomically, indented with two spaces
// and terminated by a newline.
func (d *Document) Save(fs FileSystem, path string) error {
	out, err := json.MarshalIndent(d.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := fs.WriteFileAtomic(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Set overwrites a top-level key.
func (d *Document) Set(key string, value any) {
	d.data[key] = value
}

// Get returns a top-level value.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.data[key]
	return v, ok
}

// GetString returns a top-level string value, or "" if absent or not a
// string.
func (d *Document) GetString(key string) string {
	s, _ := d.data[key].(string)
	return s
}

// Has reports whether a top-level key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.data[key]
	return ok
}

// Delete removes a top-level key.
func (d *Document) Delete(key string) {
	delete(d.data, key)
}

// MergeMap unions entries into the nested object at key, creating it if
// absent. The template's own entries survive: when overwrite is false an
// already-present entry keeps its existing value.
func (d *Document) MergeMap(key string, entries map[string]string, overwrite bool) error {
	nested, err := d.nestedObject(key)
	if err != nil {
		return err
	}

	for name, value := range entries {
		if _, exists := nested[name]; exists && !overwrite {
			continue
		}
		nested[name] = value
	}
	return nil
}

// NestedKeys returns the keys of the nested object at key, or nil when the
// key is absent.
func (d *Document) NestedKeys(key string) ([]string, error) {
	if !d.Has(key) {
		return nil, nil
	}
	nested, err := d.nestedObject(key)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(nested))
	for k := range nested {
		keys = append(keys, k)
	}
	return keys, nil
}

// NestedString returns the string value at data[key][name], or "" if absent.
func (d *Document) NestedString(key, name string) string {
	nested, ok := d.data[key].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := nested[name].(string)
	return s
}

func (d *Document) nestedObject(key string) (map[string]any, error) {
	existing, ok := d.data[key]
	if !ok {
		nested := map[string]any{}
		d.data[key] = nested
		return nested, nil
	}

	nested, ok := existing.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest key %q is not an object", key)
	}
	return nested, nil
}
