// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Stats - search effort
type Stats struct {
	Attempts   uint64 `json:"attempts"`   // slots tried
	Backtracks uint64 `json:"backtracks"` // assignments undone
}

// Solver - depth-first search for a conflict free assignment
type Solver struct {
	log         *logger.L
	problem     *Problem
	assignments Assignments
	attempts    counter.Counter
	backtracks  counter.Counter
}

// NewSolver - create a solver that records into assignments, which
// should be empty
func NewSolver(p *Problem, a Assignments, log *logger.L) *Solver {
	return &Solver{
		log:         log,
		problem:     p,
		assignments: a,
	}
}

// Solve - search for an assignment of every course
//
// on success the assignments hold one slot for every course, otherwise
// they are left as they were
func (s *Solver) Solve() (bool, error) {
	if nil == s.problem || nil == s.assignments {
		return false, fault.ErrInvalidStructPointer
	}
	if s.problem.Slots < 1 {
		return false, fault.ErrInvalidSlots
	}

	s.log.Debugf("courses: %d  students: %d  slots: %d  conflicts: %d",
		len(s.problem.Courses), len(s.problem.Students), s.problem.Slots, s.problem.ConflictCount())

	solved := s.place(0)

	s.log.Infof("solved: %t  attempts: %d  backtracks: %d", solved, s.attempts.Uint64(), s.backtracks.Uint64())
	return solved, nil
}

// Stats - effort spent by the last Solve
func (s *Solver) Stats() Stats {
	return Stats{
		Attempts:   s.attempts.Uint64(),
		Backtracks: s.backtracks.Uint64(),
	}
}

// assign courses[n:] given that courses[:n] are already assigned
func (s *Solver) place(n int) bool {
	if n == len(s.problem.Courses) {
		return true
	}

	course := s.problem.Courses[n]
	for slot := 1; slot <= s.problem.Slots; slot += 1 {
		s.attempts.Increment()

		if !s.fits(course, slot) {
			continue
		}

		s.assignments.Insert(course, slot)
		if s.place(n + 1) {
			return true
		}
		s.assignments.Remove(course)
		s.backtracks.Increment()
		s.log.Tracef("backtrack: %s from slot: %d", course, slot)
	}
	return false
}

// true if no course already in slot shares a student with course
func (s *Solver) fits(course string, slot int) bool {
	ok := true
	s.assignments.Walk(func(assigned string, assignedSlot int) bool {
		if assignedSlot == slot && s.problem.Conflicts(course, assigned) {
			ok = false
		}
		return ok
	})
	return ok
}

// Solve - convenience wrapper to solve p into a
func Solve(p *Problem, a Assignments, log *logger.L) (bool, error) {
	return NewSolver(p, a, log).Solve()
}
