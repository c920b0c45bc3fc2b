// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree, absent keys are
// ignored
func (tree *Tree[K, V]) Remove(key K) {
	tree.Delete(key)
}

// Delete - removes a specific key from the tree
//
// returns the value that was stored and true, or the zero value and
// false if the key was not present
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	q := tree.search(key)
	if nil == q { // key not in tree
		var zero V
		return zero, false
	}
	value := q.value // preserve the value part

	start := tree.unlink(q)
	if Plain == tree.strategy {
		tree.updateHeights(start)
	} else {
		tree.rebalance(start)
	}

	tree.alloc.freeNode(q)
	tree.count -= 1
	return value, true
}

// internal: detach q from the tree without rebalancing
//
// a node with two children first exchanges positions with its
// in-order successor, after which it has no left child
//
// returns the parent of the position that was removed, which is
// where height changes start
func (tree *Tree[K, V]) unlink(q *Node[K, V]) *Node[K, V] {
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, q.right.first())
	}

	child := q.left
	if nil == child {
		child = q.right
	}
	parent := q.up
	tree.replaceChild(parent, q, child)
	return parent
}

// exchange the positions of two nodes in the tree
//
// parent and child links and the heights move, keys and values stay
// with their nodes.  The nodes may be adjacent, i.e. one the direct
// child of the other.
func (tree *Tree[K, V]) nodeSwap(a *Node[K, V], b *Node[K, V]) {
	if a == b || nil == a || nil == b {
		return
	}

	// when adjacent always treat a as the parent
	if b == a.up {
		a, b = b, a
	}

	ap, al, ar := a.up, a.left, a.right
	bp, bl, br := b.up, b.left, b.right
	aIsLeft := nil != ap && a == ap.left
	bIsLeft := nil != bp && b == bp.left

	if a == bp {
		b.up = ap
		if bIsLeft {
			b.left = a
			b.right = ar
			if nil != ar {
				ar.up = b
			}
		} else {
			b.left = al
			b.right = a
			if nil != al {
				al.up = b
			}
		}
		a.up = b
	} else {
		a.up = bp
		b.up = ap
		b.left = al
		b.right = ar
		if nil != al {
			al.up = b
		}
		if nil != ar {
			ar.up = b
		}
		tree.attach(bp, bIsLeft, a)
	}

	a.left = bl
	a.right = br
	if nil != bl {
		bl.up = a
	}
	if nil != br {
		br.up = a
	}
	tree.attach(ap, aIsLeft, b)

	a.height, b.height = b.height, a.height
}

// link n below parent on the given side, or as root
func (tree *Tree[K, V]) attach(parent *Node[K, V], left bool, n *Node[K, V]) {
	switch {
	case nil == parent:
		tree.root = n
	case left:
		parent.left = n
	default:
		parent.right = n
	}
}
