// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Student - one enrolment line
type Student struct {
	Name    string   `json:"name"`
	Courses []string `json:"courses"` // sorted, no duplicates
}

// Problem - a parsed scheduling input
type Problem struct {
	Classes  int       `json:"classes"`
	Students []Student `json:"students"`
	Slots    int       `json:"slots"`
	Courses  []string  `json:"courses"` // in order of first appearance

	conflicts map[pair]struct{}
}

// unordered course pair, a < b
type pair struct {
	a string
	b string
}

func makePair(a string, b string) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// Parse - read a problem from r
func Parse(r io.Reader) (*Problem, error) {

	scanner := bufio.NewScanner(r)

	header, err := nextLine(scanner)
	if nil != err {
		return nil, err
	}
	if len(header) < 3 {
		return nil, fault.ErrMissingHeader
	}

	counts := [3]int{}
	for i := range counts {
		n, err := strconv.Atoi(header[i])
		if nil != err {
			return nil, fmt.Errorf("header field %d: %q: %w", i+1, header[i], fault.ErrInvalidCount)
		}
		if n < 0 {
			return nil, fmt.Errorf("header field %d: %d: %w", i+1, n, fault.ErrInvalidCount)
		}
		counts[i] = n
	}

	p := &Problem{
		Classes:   counts[0],
		Students:  make([]Student, 0, counts[1]),
		Slots:     counts[2],
		Courses:   []string{},
		conflicts: make(map[pair]struct{}),
	}
	if p.Slots < 1 {
		return nil, fault.ErrInvalidSlots
	}

	seen := make(map[string]struct{})

	for len(p.Students) < counts[1] {
		fields, err := nextLine(scanner)
		if nil != err {
			return nil, err
		}
		if nil == fields {
			return nil, fmt.Errorf("read %d of %d students: %w", len(p.Students), counts[1], fault.ErrTooFewStudents)
		}

		enrolled := make(map[string]struct{})
		for _, course := range fields[1:] {
			if _, ok := seen[course]; !ok {
				seen[course] = struct{}{}
				p.Courses = append(p.Courses, course)
			}
			enrolled[course] = struct{}{}
		}

		courses := make([]string, 0, len(enrolled))
		for course := range enrolled {
			courses = append(courses, course)
		}
		sort.Strings(courses)

		for i, a := range courses {
			for _, b := range courses[i+1:] {
				p.conflicts[makePair(a, b)] = struct{}{}
			}
		}

		p.Students = append(p.Students, Student{
			Name:    fields[0],
			Courses: courses,
		})
	}

	if len(p.Courses) > p.Classes {
		return nil, fmt.Errorf("found %d courses, expected %d: %w", len(p.Courses), p.Classes, fault.ErrTooManyCourses)
	}

	return p, nil
}

// next non-blank line split into fields, nil at end of input
func nextLine(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	return nil, scanner.Err()
}

// Conflicts - true if at least one student is enrolled in both
// courses, a course never conflicts with itself
func (p *Problem) Conflicts(a string, b string) bool {
	if a == b {
		return false
	}
	_, ok := p.conflicts[makePair(a, b)]
	return ok
}

// ConflictCount - number of distinct conflicting course pairs
func (p *Problem) ConflictCount() int {
	return len(p.conflicts)
}
