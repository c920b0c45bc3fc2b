// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check that name exists and is not a directory
func EnsureFileExists(name string) bool {
	fileInfo, err := os.Stat(name)
	if nil != err {
		return false
	}
	return !fileInfo.IsDir()
}

// EnsureDirectory - the directory must already exist
func EnsureDirectory(name string) error {
	fileInfo, err := os.Stat(name)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", name)
	}
	return nil
}
