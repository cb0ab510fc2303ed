// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// YAML keys for the two required fields.
const (
	keyDOSBoxExecutable = "dosbox_executable"
	keyGameExecutable   = "game_executable"
)

// Config names the emulator to run and the game it should load.
type Config struct {
	// DOSBoxExecutable is the path (or PATH-resolvable name) of the
	// emulator binary.
	DOSBoxExecutable string `yaml:"dosbox_executable"`

	// GameExecutable is passed to the emulator as its only argument.
	GameExecutable string `yaml:"game_executable"`
}

// LogValue renders the configuration as a log group keyed by the YAML
// field names.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(keyDOSBoxExecutable, c.DOSBoxExecutable),
		slog.String(keyGameExecutable, c.GameExecutable),
	)
}

// FieldError describes a required field that is absent or has the
// wrong YAML type.
type FieldError struct {
	Field   string
	Problem string
	// Line is the 1-based line of the offending value, or 0 when the
	// field is missing.
	Line int
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Field, e.Line, e.Problem)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Problem)
}

// ParseError is returned when configuration bytes cannot be decoded
// into a [Config]. Path is empty when the bytes did not come from a
// file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing config: %v", e.Err)
	}
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadFile reads and parses the configuration file at path. Read
// failures are returned wrapped, so errors.Is(err, fs.ErrNotExist)
// works for a missing file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var parseError *ParseError
		if errors.As(err, &parseError) {
			parseError.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a YAML document into a Config. Both fields must be
// present as string scalars; unknown keys are ignored. A repeated key or
// a second document in the stream is an error.
func Parse(data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var document yaml.Node
	switch err := decoder.Decode(&document); {
	case err == io.EOF:
	case err != nil:
		return nil, &ParseError{Err: err}
	default:
		var extra yaml.Node
		switch err := decoder.Decode(&extra); {
		case err == io.EOF:
		case err != nil:
			return nil, &ParseError{Err: err}
		default:
			return nil, &ParseError{Err: fmt.Errorf("line %d: expected a single YAML document, found another", extra.Line)}
		}
	}

	// Empty input decodes to a zero node; "---" alone to a null scalar.
	// Both mean "no fields" and fall through to the missing-field errors.
	root := &document
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			root = &yaml.Node{}
		} else {
			root = root.Content[0]
		}
	}

	fields := map[string]*yaml.Node{}
	switch {
	case root.Kind == 0:
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
	case root.Kind == yaml.MappingNode:
		var err error
		if fields, err = mappingFields(root); err != nil {
			return nil, &ParseError{Err: err}
		}
	default:
		return nil, &ParseError{Err: fmt.Errorf("line %d: document root must be a mapping", root.Line)}
	}

	cfg := &Config{}
	var errs []error
	if err := stringField(fields, keyDOSBoxExecutable, &cfg.DOSBoxExecutable); err != nil {
		errs = append(errs, err)
	}
	if err := stringField(fields, keyGameExecutable, &cfg.GameExecutable); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, &ParseError{Err: errors.Join(errs...)}
	}
	return cfg, nil
}

// mappingFields indexes a mapping node's values by key. Any repeated
// key is rejected, known or not, matching yaml.v3's struct decoding.
func mappingFields(mapping *yaml.Node) (map[string]*yaml.Node, error) {
	fields := make(map[string]*yaml.Node, len(mapping.Content)/2)
	keyLines := make(map[string]int, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if previousLine, ok := keyLines[key.Value]; ok {
			return nil, fmt.Errorf("line %d: mapping key %q already defined at line %d",
				key.Line, key.Value, previousLine)
		}
		keyLines[key.Value] = key.Line
		fields[key.Value] = mapping.Content[i+1]
	}
	return fields, nil
}

func stringField(fields map[string]*yaml.Node, key string, target *string) error {
	node, ok := fields[key]
	if !ok {
		return &FieldError{Field: key, Problem: "required field is missing"}
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return &FieldError{Field: key, Problem: "expected a string, got " + kindName(node.Kind), Line: node.Line}
	}
	switch node.ShortTag() {
	case "!!str":
	case "!!null":
		return &FieldError{Field: key, Problem: "required field is null", Line: node.Line}
	default:
		return &FieldError{Field: key, Problem: "expected a string, got " + node.ShortTag(), Line: node.Line}
	}
	return node.Decode(target)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	default:
		return "scalar"
	}
}
