package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rook-computer/clockface/clock"
)

// LoadStyle reads a YAML style file into a property record keyed like the
// clock's style configuration. An empty path yields an empty record. Values
// are returned as decoded; numeric text is coerced when the clock mounts.
func LoadStyle(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style %s: %w", path, err)
	}
	record, err := ParseStyle(data)
	if err != nil {
		return nil, fmt.Errorf("style %s: %w", path, err)
	}
	return record, nil
}

// ParseStyle decodes a YAML mapping and rejects keys the clock does not know.
func ParseStyle(data []byte) (map[string]any, error) {
	record := map[string]any{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&record); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if record == nil {
		record = map[string]any{}
	}
	for key := range record {
		if !clock.IsKey(key) {
			return nil, fmt.Errorf("unknown key %q", key)
		}
	}
	return record, nil
}
