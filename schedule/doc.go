// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schedule - assign courses to exam time slots so that no
// student has two exams in the same slot
//
// The input is plain text.  The first line holds three counts: the
// number of distinct courses, the number of students and the number
// of time slots.  Each following line describes one student: a name
// and then the courses that student is enrolled in, all separated by
// white space.
//
//	3 2 2
//	alice cs101 ma201
//	bob ma201 ph110
//
// Courses are assigned in the order they first appear in the input by
// a depth-first search that tries slots 1 to N for each course and
// backs out of an assignment as soon as the remaining courses cannot
// be placed.  The current partial assignment is kept in an ordered
// map so a solution is printed in course order.
package schedule
