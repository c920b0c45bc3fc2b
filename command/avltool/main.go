// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

type metadata struct {
	strategy avl.Strategy
	file     string
	verbose  bool
	r        io.Reader
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp(os.Stdin, os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(r io.Reader, w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "inspect an ordered map built from a list of keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "plain, p",
			Usage: " do not rebalance the tree",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " read keys from `FILE` [default stdin]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "display the tree structure",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values, heights and balance factors",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "check",
			Usage:     "verify tree consistency and output a JSON report",
			ArgsUsage: " ",
			Action:    runCheck,
		},
		{
			Name:      "list",
			Usage:     "list keys in order with their occurrence count",
			ArgsUsage: " ",
			Action:    runList,
		},
		{
			Name:      "remove",
			Usage:     "remove keys after loading then output a JSON report",
			ArgsUsage: "KEY...",
			Action:    runRemove,
		},
		{
			Name:      "version",
			Usage:     "display avltool version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		strategy := avl.Balanced
		if c.GlobalBool("plain") {
			strategy = avl.Plain
		}

		c.App.Metadata["config"] = &metadata{
			strategy: strategy,
			file:     c.GlobalString("file"),
			verbose:  c.GlobalBool("verbose"),
			r:        r,
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	return app
}
