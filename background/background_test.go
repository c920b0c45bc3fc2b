// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
)

type ticker struct {
	id      int
	ticks   counter.Counter
	started chan struct{}
	final   int
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {

	final := args.(int)
	close(state.started)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		state.ticks.Increment()
		time.Sleep(time.Millisecond)
	}

	state.final = final + state.id
}

func newTicker(id int) *ticker {
	return &ticker{
		id:      id,
		started: make(chan struct{}),
	}
}

func TestBackground(t *testing.T) {

	proc1 := newTicker(1)
	proc2 := newTicker(2)

	p := background.Start(background.Processes{proc1, proc2}, 1000)

	for _, proc := range []*ticker{proc1, proc2} {
		select {
		case <-proc.started:
		case <-time.After(5 * time.Second):
			t.Fatalf("process %d did not start", proc.id)
		}
	}
	assert.Eventually(t, func() bool {
		return proc1.ticks.Uint64() > 2 && proc2.ticks.Uint64() > 2
	}, 5*time.Second, time.Millisecond)

	p.Stop()

	// Stop waits, so the final values are visible here
	assert.Equal(t, 1001, proc1.final)
	assert.Equal(t, 1002, proc2.final)

	ticks := proc1.ticks.Uint64()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, proc1.ticks.Uint64(), "process still running after stop")
}

func TestStopTwice(t *testing.T) {
	proc := newTicker(0)
	p := background.Start(background.Processes{proc}, 0)
	p.Stop()
	p.Stop()
	assert.Equal(t, 0, proc.final)
}

func TestNoProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
