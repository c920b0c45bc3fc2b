// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logDirectory = "testing"
	category     = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(logDirectory)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "scheduler.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
