// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario reads the scenario files of the curly command and of the
// corpus tests: YAML documents that pair a format string and its arguments
// with the expected rendering, or the expected error. Scenario files can be
// bundled in a txtar archive.
//
// A scenario file looks like
//
//	scenarios:
//	  - name: manual indexes
//	    format: "{1}, {0}"
//	    args: [zero, one]
//	    want: "one, zero"
//	  - name: unmatched brace
//	    format: "{"
//	    error: unmatched '{' in format string
package scenario

import (
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"
)

// Scenario is one rendering case. Either Want or Error is set: a scenario
// with an Error expects the rendering to fail with an error whose message
// contains it.
type Scenario struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Args   Args   `yaml:"args"`
	Want   string `yaml:"want"`
	Error  string `yaml:"error"`
}

// Args is the argument list of a scenario. The arguments are YAML scalars
// and keep their YAML types: strings, integers, floats, booleans and nulls.
type Args []interface{}

// UnmarshalYAML implements yaml.Unmarshaler. It rejects arguments that are
// not scalars.
func (a *Args) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: args is not a sequence", value.Line)
	}
	args := make([]interface{}, len(value.Content))
	for i, n := range value.Content {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: argument %d is not a scalar", n.Line, i)
		}
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return err
		}
		args[i] = v
	}
	*a = args
	return nil
}

// File is a named list of scenarios.
type File struct {
	Name      string
	Scenarios []Scenario
}

// Parse parses the scenario file with the given name.
func Parse(name string, data []byte) (*File, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenario: cannot parse %s: %s", name, err)
	}
	for i, s := range doc.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario: %s: scenario %d has no name", name, i)
		}
	}
	return &File{Name: name, Scenarios: doc.Scenarios}, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// ParseArchive parses a txtar archive of scenario files.
func ParseArchive(name string, data []byte) ([]*File, error) {
	arch := txtar.Parse(data)
	if len(arch.Files) == 0 {
		return nil, fmt.Errorf("scenario: %s: empty archive", name)
	}
	files := make([]*File, len(arch.Files))
	for i, f := range arch.Files {
		file, err := Parse(f.Name, f.Data)
		if err != nil {
			return nil, err
		}
		files[i] = file
	}
	return files, nil
}

// LoadArchive reads and parses a txtar archive of scenario files.
func LoadArchive(path string) ([]*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseArchive(path, data)
}
