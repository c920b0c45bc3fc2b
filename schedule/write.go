// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"fmt"
	"io"
)

// message printed when the search fails
const NoSolution = "No Valid Solution."

// Assignment - one course placed in a slot
type Assignment struct {
	Course string `json:"course"`
	Slot   int    `json:"slot"`
}

// List - the assignments in course order
func List(a Assignments) []Assignment {
	list := make([]Assignment, 0, a.Count())
	a.Walk(func(course string, slot int) bool {
		list = append(list, Assignment{Course: course, Slot: slot})
		return true
	})
	return list
}

// Write - print one "course slot" line per assignment, or the no
// solution message
func Write(w io.Writer, solved bool, a Assignments) error {
	if !solved {
		_, err := fmt.Fprintln(w, NoSolution)
		return err
	}
	for _, item := range List(a) {
		if _, err := fmt.Fprintf(w, "%s %d\n", item.Course, item.Slot); nil != err {
			return err
		}
	}
	return nil
}
