// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"
)

var errMissingKeys = errors.New("no keys to remove")

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys := c.Args()
	if 0 == len(keys) {
		return errMissingKeys
	}

	tree, err := m.load()
	if nil != err {
		return err
	}

	removed := make([]string, 0, len(keys))
	missing := make([]string, 0)
	for _, key := range keys {
		if _, ok := tree.Delete(key); ok {
			removed = append(removed, key)
		} else {
			missing = append(missing, key)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %s  height: %d  rotations: %d\n", key, tree.Height(), tree.Rotations())
		}
	}

	r := newReport(tree)
	r.Removed = removed
	r.Missing = missing

	if err := printJson(m.w, r); nil != err {
		return err
	}
	if !r.ok() {
		return errInconsistentTree
	}
	return nil
}
