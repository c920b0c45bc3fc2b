// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - true if no node has children whose heights differ by
// more than one
//
// heights are computed from the structure, not read from the nodes,
// so this can be used to verify the tree
func (tree *Tree[K, V]) IsBalanced() bool {
	return balancedHeight(tree.root) >= 0
}

// internal: height of a sub-tree, or -1 as soon as any node in it is
// unbalanced
func balancedHeight[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	lh := balancedHeight(p.left)
	if lh < 0 {
		return -1
	}
	rh := balancedHeight(p.right)
	if rh < 0 {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}
	return 1 + max(lh, rh)
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - check every stored height against the heights of
// its children
func (tree *Tree[K, V]) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(lh, rh)
	return h, h == p.height
}

// CheckOrder - check that an in-order traversal gives strictly
// increasing keys and visits exactly Count nodes
func (tree *Tree[K, V]) CheckOrder() bool {
	n := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return false
		}
		previous = p
		n += 1
	}
	return n == tree.count
}

// Check - run all the consistency checks, for the balanced strategy
// this includes the balance condition
func (tree *Tree[K, V]) Check() bool {
	if !tree.CheckUp() || !tree.CheckHeights() || !tree.CheckOrder() {
		return false
	}
	if Balanced == tree.strategy {
		return tree.IsBalanced()
	}
	return true
}
