// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := m.load()
	if nil != err {
		return err
	}

	for it := tree.Begin(); !it.IsEnd(); it = it.Next() {
		fmt.Fprintf(m.w, "%s %d\n", it.Key(), it.Value())
	}
	return nil
}
