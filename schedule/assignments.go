// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schedule

import (
	"strings"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -source=assignments.go -destination=mocks/mock_assignments.go -package=mocks

// Assignments - an ordered course → slot map
type Assignments interface {
	Insert(course string, slot int) bool
	Remove(course string)
	Lookup(course string) (int, bool)
	Walk(f func(course string, slot int) bool)
	Count() int
}

// TreeAssignments - assignments held in a search tree
type TreeAssignments struct {
	tree *avl.Tree[string, int]
}

// NewTreeAssignments - empty assignments using the given tree strategy
func NewTreeAssignments(strategy avl.Strategy) *TreeAssignments {
	return &TreeAssignments{
		tree: avl.NewWithStrategy[string, int](strategy, strings.Compare),
	}
}

// Insert - assign course to slot, replacing any previous slot
func (t *TreeAssignments) Insert(course string, slot int) bool {
	return t.tree.Insert(course, slot)
}

// Remove - drop the assignment of course
func (t *TreeAssignments) Remove(course string) {
	t.tree.Remove(course)
}

// Lookup - slot assigned to course
func (t *TreeAssignments) Lookup(course string) (int, bool) {
	it := t.tree.Find(course)
	if it.IsEnd() {
		return 0, false
	}
	return it.Value(), true
}

// Walk - visit the assignments in course order
func (t *TreeAssignments) Walk(f func(course string, slot int) bool) {
	for it := t.tree.Begin(); !it.IsEnd(); it = it.Next() {
		if !f(it.Key(), it.Value()) {
			return
		}
	}
}

// Count - number of assigned courses
func (t *TreeAssignments) Count() int {
	return t.tree.Count()
}

// Tree - the underlying tree, for inspection
func (t *TreeAssignments) Tree() *avl.Tree[string, int] {
	return t.tree
}
