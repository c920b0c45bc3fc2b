// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/avl"
)

type checks struct {
	Up      bool `json:"up"`
	Heights bool `json:"heights"`
	Order   bool `json:"order"`
}

type report struct {
	Strategy  string    `json:"strategy"`
	Count     int       `json:"count"`
	Height    int       `json:"height"`
	Balanced  bool      `json:"balanced"`
	Rotations uint64    `json:"rotations"`
	Checks    checks    `json:"checks"`
	Stats     avl.Stats `json:"stats"`
	Removed   []string  `json:"removed,omitempty"`
	Missing   []string  `json:"missing,omitempty"`
}

func newReport(tree *avl.Tree[string, int]) *report {
	return &report{
		Strategy:  tree.Strategy().String(),
		Count:     tree.Count(),
		Height:    tree.Height(),
		Balanced:  tree.IsBalanced(),
		Rotations: tree.Rotations(),
		Checks: checks{
			Up:      tree.CheckUp(),
			Heights: tree.CheckHeights(),
			Order:   tree.CheckOrder(),
		},
		Stats: tree.Stats(),
	}
}

// a plain tree is allowed to be unbalanced
func (r *report) ok() bool {
	if !r.Checks.Up || !r.Checks.Heights || !r.Checks.Order {
		return false
	}
	return r.Balanced || avl.Plain.String() == r.Strategy
}
