// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the value of
// an existing node with the same key
//
// returns true if a new node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	p, added := tree.place(key, value)
	if !added {
		// overwrite: shape and heights are unchanged
		return false
	}
	tree.count += 1

	tree.updateHeights(p)
	if Plain == tree.strategy {
		return true
	}

	// one restructure always restores the height the sub-tree had
	// before the insert, so no further ancestors can be unbalanced
	z := tree.findImbalance(p)
	if nil == z {
		return true
	}
	top := tree.restructure(z)

	// ancestors were raised in the first pass; bring them back down
	tree.updateHeights(top.up)
	return true
}

// internal: ordered placement of a key without any rebalancing
//
// returns the node holding the key and whether it was newly created
func (tree *Tree[K, V]) place(key K, value V) (*Node[K, V], bool) {
	if nil == tree.root {
		tree.root = tree.alloc.newNode(key, value, nil)
		return tree.root, true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			if nil == p.left {
				p.left = tree.alloc.newNode(key, value, p)
				return p.left, true
			}
			p = p.left
		case c > 0:
			if nil == p.right {
				p.right = tree.alloc.newNode(key, value, p)
				return p.right, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}
