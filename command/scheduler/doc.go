// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Exam timetable program
//
// This program reads a course enrolment file, searches for an
// assignment of courses to time slots where no student has two exams
// in the same slot and prints one "course slot" line per course.
//
// With a database configured every result is archived under the
// digest of its input, and an unchanged input is answered from the
// archive.  The watch command re-runs the search each time the input
// file is written.
package main
