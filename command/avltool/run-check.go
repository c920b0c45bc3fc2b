// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/urfave/cli"
)

var errInconsistentTree = errors.New("inconsistent tree")

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := m.load()
	if nil != err {
		return err
	}

	r := newReport(tree)
	if err := printJson(m.w, r); nil != err {
		return err
	}
	if !r.ok() {
		return errInconsistentTree
	}
	return nil
}
