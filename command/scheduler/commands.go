// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that need neither the configuration file nor the log;
// returns false if the command must be run by the main program
func processSetupCommand(w io.Writer, program string, arguments []string) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run", "watch", "history":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")

		fmt.Fprintf(w, "  run [FILE]                 (start)  - schedule FILE, or the configured input_file\n")
		fmt.Fprintf(w, "                                        same as no arguments\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  watch [FILE]                        - schedule FILE each time it is written\n")
		fmt.Fprintf(w, "\n")

		fmt.Fprintf(w, "  history                             - list archived results as JSON\n")
		fmt.Fprintf(w, "                                        requires a database in the configuration\n")
		fmt.Fprintf(w, "\n")

		if "help" != command && "h" != command && "?" != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}
