// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// read all keys from the configured source into a new tree
func (m *metadata) load() (*avl.Tree[string, int], error) {

	r := m.r
	if "" != m.file {
		if !util.EnsureFileExists(m.file) {
			return nil, fmt.Errorf("%q: %w", m.file, fault.ErrMissingInputFile)
		}
		f, err := os.Open(m.file)
		if nil != err {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if nil == r {
		return nil, fault.ErrMissingInputFile
	}

	tree, err := readKeys(r, m.strategy)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d keys  strategy: %s  height: %d  rotations: %d\n",
			tree.Count(), tree.Strategy(), tree.Height(), tree.Rotations())
	}
	return tree, nil
}

// each key maps to the number of times it was read
func readKeys(r io.Reader, strategy avl.Strategy) (*avl.Tree[string, int], error) {

	tree := avl.NewWithStrategy[string, int](strategy, strings.Compare)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		key := scanner.Text()
		n, _ := tree.Get(key)
		tree.Insert(key, n+1)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return tree, nil
}
