// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/schedule"
	"github.com/bitmark-inc/avltree/storage"
	"github.com/bitmark-inc/avltree/util"
)

const (
	runnerLoggerPrefix   = "runner"
	scheduleLoggerPrefix = "schedule"
)

// solves input files using the settings from the configuration
type runner struct {
	log       *logger.L
	solverLog *logger.L
	config    *Configuration
}

func newRunner(config *Configuration, log *logger.L) *runner {
	return &runner{
		log:       log,
		solverLog: logger.New(scheduleLoggerPrefix),
		config:    config,
	}
}

// the input file from the command arguments or the configuration
func (r *runner) inputFile(arguments []string) (string, error) {
	fileName := r.config.InputFile
	if len(arguments) > 0 {
		fileName = arguments[0]
	}
	if "" == fileName {
		return "", fault.ErrMissingInputFile
	}
	if !util.EnsureFileExists(fileName) {
		return "", fmt.Errorf("%q: %w", fileName, fault.ErrMissingInputFile)
	}
	return fileName, nil
}

// solve one file and write the result to w
func (r *runner) run(fileName string, w io.Writer) (*storage.Record, error) {

	content, err := os.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", fileName, fault.ErrMissingInputFile)
		}
		return nil, err
	}

	problem, err := schedule.Parse(bytes.NewReader(content))
	if nil != err {
		r.log.Errorf("parse: %q  error: %s", fileName, err)
		return nil, err
	}
	if r.config.MaxSlots > 0 {
		problem.Slots = r.config.MaxSlots
	}

	strategy := r.config.strategy()
	digest := storage.Digest(content)

	if storage.IsInitialised() {
		record, err := storage.Fetch(digest)
		if nil == err && record.Slots == problem.Slots && record.Strategy == strategy.String() {
			r.log.Infof("archived result for: %q  digest: %s", fileName, digest)
			return record, writeRecord(w, record)
		}
	}

	assignments := schedule.NewTreeAssignments(strategy)
	solver := schedule.NewSolver(problem, assignments, r.solverLog)

	solved, err := solver.Solve()
	if nil != err {
		return nil, err
	}
	if !solved {
		r.log.Warnf("%q: %s", fileName, fault.ErrNoSolution)
	}

	tree := assignments.Tree()
	r.log.Debugf("tree: strategy: %s  height: %d  rotations: %d  stats: %+v",
		tree.Strategy(), tree.Height(), tree.Rotations(), tree.Stats())

	if err := schedule.Write(w, solved, assignments); nil != err {
		return nil, err
	}

	record := &storage.Record{
		Digest:      digest,
		File:        fileName,
		Strategy:    strategy.String(),
		Slots:       problem.Slots,
		Solved:      solved,
		Assignments: schedule.List(assignments),
		Stats:       solver.Stats(),
		Timestamp:   time.Now().UTC(),
	}

	if storage.IsInitialised() {
		if err := storage.Store(record); nil != err {
			r.log.Errorf("archive: %q  error: %s", fileName, err)
			return nil, err
		}
	}

	return record, nil
}

// all archived records as JSON
func printHistory(w io.Writer) error {
	records, err := storage.History()
	if nil != err {
		return err
	}
	return printJson(w, records)
}

// output a previously stored result in the same format as a new one
func writeRecord(w io.Writer, record *storage.Record) error {
	strategy, err := avl.ParseStrategy(record.Strategy)
	if nil != err {
		return err
	}
	assignments := schedule.NewTreeAssignments(strategy)
	for _, a := range record.Assignments {
		assignments.Insert(a.Course, a.Slot)
	}
	return schedule.Write(w, record.Solved, assignments)
}

// open the configured output, or use stdout
func (r *runner) output() (io.WriteCloser, error) {
	if "" == r.config.OutputFile {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(r.config.OutputFile)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
