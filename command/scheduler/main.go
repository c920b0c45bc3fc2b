// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration
	if processSetupCommand(os.Stdout, program, arguments) {
		return
	}

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: panic logger setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile {
		lockFile, err := os.OpenFile(masterConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(masterConfiguration.PidFile)
	}

	// optional result archive
	if "" != masterConfiguration.Database {
		readOnly := "history" == command
		if err := storage.Initialise(masterConfiguration.Database, readOnly); nil != err {
			log.Criticalf("storage initialise error: %s", err)
			exitwithstatus.Message("%s: storage: %q initialise error: %s", program, masterConfiguration.Database, err)
		}
		defer storage.Finalise()
	}

	r := newRunner(masterConfiguration, logger.New(runnerLoggerPrefix))
	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	switch command {
	case "history":
		if !storage.IsInitialised() {
			exitwithstatus.Message("%s: history requires a database in: %q", program, configurationFile)
		}
		if err := printHistory(os.Stdout); nil != err {
			exitwithstatus.Message("%s: history error: %s", program, err)
		}

	case "watch":
		fileName, err := r.inputFile(arguments)
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		if err := runOnce(r, fileName, verbose, os.Stderr); nil != err {
			log.Errorf("run: %q  error: %s", fileName, err)
			fmt.Fprintf(os.Stderr, "%s: %s\n", program, err)
		}
		if err := watch(r, fileName, verbose, quiet, log); nil != err {
			exitwithstatus.Message("%s: watch: %q  error: %s", program, fileName, err)
		}

	default: // run, start
		fileName, err := r.inputFile(arguments)
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
		if err := runOnce(r, fileName, verbose, os.Stderr); nil != err {
			log.Errorf("run: %q  error: %s", fileName, err)
			exitwithstatus.Message("%s: %s", program, err)
		}
	}
}

// solve a file writing to the configured output
func runOnce(r *runner, fileName string, verbose bool, e io.Writer) error {
	out, err := r.output()
	if nil != err {
		return err
	}
	defer out.Close()

	record, err := r.run(fileName, out)
	if nil != err {
		return err
	}
	if verbose {
		fmt.Fprintf(e, "solved: %t  slots: %d  attempts: %d  backtracks: %d\n",
			record.Solved, record.Slots, record.Stats.Attempts, record.Stats.Backtracks)
	}
	return nil
}

// re-run each time the file changes until it is removed or a signal
// arrives
func watch(r *runner, fileName string, verbose bool, quiet bool, log *logger.L) error {
	channels := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	p := newReprocessor(r, fileName, verbose, os.Stderr, channels)
	processes := background.Start(background.Processes{p}, nil)
	defer processes.Stop()

	if !quiet {
		fmt.Fprintf(os.Stderr, "watching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", fileName)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case <-p.removed:
		log.Warnf("input removed: %q", fileName)
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Fprintf(os.Stderr, "\nreceived signal: %v\n", sig)
		}
	}
	return nil
}
