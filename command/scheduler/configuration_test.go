// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    input_file = "students.txt",
    output_file = "/tmp/timetable.txt",
    max_slots = 4,
    strategy = "plain",
    database = "results.leveldb",
    logging = {
        size = 2048,
        count = 3,
        levels = {
            DEFAULT = "warn",
        },
    },
}
`)
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), c.DataDirectory)
	assert.Equal(t, filepath.Join(dir, "students.txt"), c.InputFile)
	assert.Equal(t, "/tmp/timetable.txt", c.OutputFile, "absolute path was changed")
	assert.Equal(t, filepath.Join(dir, "results.leveldb"), c.Database)
	assert.Equal(t, "", c.PidFile)
	assert.Equal(t, 4, c.MaxSlots)
	assert.Equal(t, "plain", c.Strategy)
	assert.Equal(t, avl.Plain, c.strategy())
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory)
	assert.DirExists(t, c.Logging.Directory)
	assert.Equal(t, defaultLogFile, c.Logging.File)
	assert.Equal(t, 2048, c.Logging.Size)
	assert.Equal(t, 3, c.Logging.Count)
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = "." }`)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, "avl", c.Strategy)
	assert.Equal(t, avl.Balanced, c.strategy())
	assert.Equal(t, 0, c.MaxSlots)
	assert.Equal(t, "", c.InputFile)
	assert.Equal(t, "", c.OutputFile)
	assert.Equal(t, "", c.Database)
	assert.Equal(t, defaultLogSize, c.Logging.Size)
	assert.Equal(t, defaultLogCount, c.Logging.Count)
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		text     string
		expected error
	}{
		{`return { data_directory = ".", strategy = "splay" }`, fault.ErrInvalidStrategy},
		{`return { data_directory = ".", max_slots = -2 }`, fault.ErrInvalidSlots},
	}
	for i, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.text))
		assert.True(t, errors.Is(err, item.expected), "%d: actual: %v  expected: %v", i, err, item.expected)
	}

	texts := []string{
		`return {}`,
		`return { data_directory = "~" }`,
		`return { data_directory = "/no/such/directory" }`,
		`return { data_directory = ".", logging = { file = "sub/x.log" } }`,
		`return "not a table"`,
	}
	for i, text := range texts {
		_, err := getConfiguration(writeConfiguration(t, text))
		assert.Error(t, err, "%d: %s", i, text)
	}
}
