// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
)

const (
	reprocessLoggerPrefix = "reprocess"
)

// background process that solves the input again on each change
// event from the file watcher
type reprocessor struct {
	log      *logger.L
	runner   *runner
	fileName string
	verbose  bool
	e        io.Writer
	channels WatcherChannel
	removed  chan struct{}
	runs     counter.Counter
	failures counter.Counter
}

func newReprocessor(r *runner, fileName string, verbose bool, e io.Writer, channels WatcherChannel) *reprocessor {
	return &reprocessor{
		log:      logger.New(reprocessLoggerPrefix),
		runner:   r,
		fileName: fileName,
		verbose:  verbose,
		e:        e,
		channels: channels,
		removed:  make(chan struct{}),
	}
}

// Run - background process loop
func (p *reprocessor) Run(args interface{}, shutdown <-chan struct{}) {

	p.log.Infof("starting for: %q", p.fileName)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-p.channels.change:
			p.log.Infof("input changed: %q", p.fileName)
			p.runs.Increment()
			if err := runOnce(p.runner, p.fileName, p.verbose, p.e); nil != err {
				p.failures.Increment()
				p.log.Errorf("run: %q  error: %s", p.fileName, err)
				fmt.Fprintf(p.e, "error: %s\n", err)
			}

		case <-p.channels.remove:
			p.log.Warnf("input removed: %q", p.fileName)
			close(p.removed)
			<-shutdown
			break loop
		}
	}

	p.log.Infof("stopped after: %d runs  %d failures", p.runs.Uint64(), p.failures.Uint64())
}
