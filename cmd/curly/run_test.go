// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/curlyfmt/curly/internal/scenario"
)

var verifyTests = []struct {
	scenario scenario.Scenario
	msg      string
	ok       bool
}{
	{scenario.Scenario{
		Name:   "pass",
		Format: "{} + {}",
		Args:   scenario.Args{1, 2},
		Want:   "1 + 2",
	}, "", true},
	{scenario.Scenario{
		Name:   "wrong output",
		Format: "{}",
		Args:   scenario.Args{1},
		Want:   "2",
	}, `got "1", want "2"`, false},
	{scenario.Scenario{
		Name:   "expected error",
		Format: "{",
		Error:  "unmatched '{'",
	}, "", true},
	{scenario.Scenario{
		Name:   "unexpected success",
		Format: "ok",
		Error:  "unmatched",
	}, `got "ok", want error containing "unmatched"`, false},
	{scenario.Scenario{
		Name:   "wrong error",
		Format: "{",
		Error:  "no such thing",
	}, `got error "curly: unmatched '{' in format string at offset 0", want error containing "no such thing"`, false},
	{scenario.Scenario{
		Name:   "unexpected error",
		Format: "{",
		Want:   "x",
	}, `got error "curly: unmatched '{' in format string at offset 0", want "x"`, false},
}

// TestVerify tests the verify function.
func TestVerify(t *testing.T) {
	for _, test := range verifyTests {
		msg, ok := verify(test.scenario)
		if ok != test.ok {
			t.Errorf("%s: ok is %t, expected %t", test.scenario.Name, ok, test.ok)
			continue
		}
		if msg != test.msg {
			t.Errorf("%s: message is %q, expected %q", test.scenario.Name, msg, test.msg)
		}
	}
}

// TestLoadPath tests the loadPath function on a YAML file, a txtar archive
// and an unsupported extension.
func TestLoadPath(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "basic.yaml")
	src := "scenarios:\n  - name: one\n    format: \"{}\"\n    args: [5]\n    want: \"5\"\n"
	if err := os.WriteFile(yamlPath, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}
	files, err := loadPath(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("loaded %d files, expected 1", len(files))
	}
	if len(files[0].Scenarios) != 1 || files[0].Scenarios[0].Name != "one" {
		t.Fatalf("unexpected scenarios %v", files[0].Scenarios)
	}

	txtarPath := filepath.Join(dir, "suite.txtar")
	src = "-- a.yaml --\nscenarios:\n  - name: a\n    format: x\n    want: x\n" +
		"-- b.yaml --\nscenarios:\n  - name: b\n    format: y\n    want: y\n"
	if err := os.WriteFile(txtarPath, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}
	files, err = loadPath(txtarPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("loaded %d files, expected 2", len(files))
	}

	_, err = loadPath(filepath.Join(dir, "readme.txt"))
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if !strings.Contains(err.Error(), `unsupported file extension ".txt"`) {
		t.Fatalf("unexpected error %q", err)
	}
}
