// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"path/filepath"
	"strings"

	"github.com/curlyfmt/curly"
	"github.com/curlyfmt/curly/builtin"
	"github.com/curlyfmt/curly/internal/scenario"
)

// runCmd implements the command "curly run".
func runCmd() {
	verbose := flag.Bool("v", false, "report every scenario, not only failures")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		exit(1)
		return
	}
	ran := 0
	failed := 0
	for _, path := range flag.Args() {
		files, err := loadPath(path)
		if err != nil {
			exitError("%s", err)
			return
		}
		for _, file := range files {
			for _, sc := range file.Scenarios {
				ran++
				msg, ok := verify(sc)
				if !ok {
					failed++
					curly.Println("FAIL {}: {}: {}", file.Name, sc.Name, msg)
				} else if *verbose {
					curly.Println("ok   {}: {}", file.Name, sc.Name)
				}
			}
		}
	}
	curly.Println("{} scenarios, {} failed", ran, failed)
	if failed > 0 {
		exit(1)
	}
}

// loadPath loads the scenario files at path. A .yaml or .yml file holds one
// scenario file, a .txtar archive holds several.
func loadPath(path string) ([]*scenario.File, error) {
	switch filepath.Ext(path) {
	case ".txtar":
		return scenario.LoadArchive(path)
	case ".yaml", ".yml":
		file, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		return []*scenario.File{file}, nil
	}
	return nil, errors.New(curly.MustFormat("{}: unsupported file extension {}", path, builtin.Quote(filepath.Ext(path))))
}

// verify renders a scenario and checks the outcome against its expectation.
// It returns a message describing the failure and false if the scenario
// fails.
func verify(sc scenario.Scenario) (string, bool) {
	got, err := curly.Format(sc.Format, sc.Args...)
	if sc.Error != "" {
		if err == nil {
			return curly.MustFormat("got {}, want error containing {}", builtin.Quote(got), builtin.Quote(sc.Error)), false
		}
		if !strings.Contains(err.Error(), sc.Error) {
			return curly.MustFormat("got error {}, want error containing {}", builtin.Quote(err.Error()), builtin.Quote(sc.Error)), false
		}
		return "", true
	}
	if err != nil {
		return curly.MustFormat("got error {}, want {}", builtin.Quote(err.Error()), builtin.Quote(sc.Want)), false
	}
	if got != sc.Want {
		return curly.MustFormat("got {}, want {}", builtin.Quote(got), builtin.Quote(sc.Want)), false
	}
	return "", true
}
