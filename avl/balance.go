// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func (p *Node[K, V]) safeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute stored height from the children
func (p *Node[K, V]) updateHeight() {
	p.height = 1 + max(p.left.safeHeight(), p.right.safeHeight())
}

// left height minus right height
func (p *Node[K, V]) balanceFactor() int {
	return p.left.safeHeight() - p.right.safeHeight()
}

func (p *Node[K, V]) isUnbalanced() bool {
	bf := p.balanceFactor()
	return bf > 1 || bf < -1
}

// the child with the larger height; on a tie choose the left child
// if preferLeft is set, otherwise the right child
func (p *Node[K, V]) tallerChild(preferLeft bool) *Node[K, V] {
	lh := p.left.safeHeight()
	rh := p.right.safeHeight()
	switch {
	case lh > rh:
		return p.left
	case rh > lh:
		return p.right
	case preferLeft:
		return p.left
	default:
		return p.right
	}
}

// refresh heights from p up to the root
func (tree *Tree[K, V]) updateHeights(p *Node[K, V]) {
	for ; nil != p; p = p.up {
		p.updateHeight()
	}
}

// lowest node on the path from p to the root that violates the
// balance condition, or nil
func (tree *Tree[K, V]) findImbalance(p *Node[K, V]) *Node[K, V] {
	for ; nil != p; p = p.up {
		if p.isUnbalanced() {
			return p
		}
	}
	return nil
}

// put n in the position below parent that old occupied, or make n the
// root when parent is nil
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], n *Node[K, V]) {
	if nil != n {
		n.up = parent
	}
	switch {
	case nil == parent:
		tree.root = n
	case parent.left == old:
		parent.left = n
	default:
		parent.right = n
	}
}

// rotate n down to the left, its right child takes its place
//
//	    n                pivot
//	   / \               /   \
//	  a   pivot   →     n     c
//	      /   \        / \
//	  inner    c      a   inner
//
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateLeft(n *Node[K, V]) *Node[K, V] {
	pivot := n.right
	inner := pivot.left

	tree.replaceChild(n.up, n, pivot)

	n.right = inner
	if nil != inner {
		inner.up = n
	}
	pivot.left = n
	n.up = pivot

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rotate n down to the right, its left child takes its place
//
//	        n          pivot
//	       / \         /   \
//	   pivot  c   →   a     n
//	   /   \               / \
//	  a   inner       inner   c
//
// returns the new sub-tree root
func (tree *Tree[K, V]) rotateRight(n *Node[K, V]) *Node[K, V] {
	pivot := n.left
	inner := pivot.right

	tree.replaceChild(n.up, n, pivot)

	n.left = inner
	if nil != inner {
		inner.up = n
	}
	pivot.right = n
	n.up = pivot

	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// restore balance at z, which must be unbalanced
//
// y is the taller child of z and x the taller child of y; when the
// children of y have equal height x is taken from the same side as y
// so that a single rotation is used
//
// returns the new root of the sub-tree that z headed
func (tree *Tree[K, V]) restructure(z *Node[K, V]) *Node[K, V] {
	y := z.tallerChild(true)
	yIsLeft := z.left == y
	x := y.tallerChild(yIsLeft)

	tree.rotations.Increment()

	switch {
	case !yIsLeft && x == y.right: // right-right
		return tree.rotateLeft(z)
	case yIsLeft && x == y.left: // left-left
		return tree.rotateRight(z)
	case !yIsLeft: // right-left
		tree.rotateRight(y)
		return tree.rotateLeft(z)
	default: // left-right
		tree.rotateLeft(y)
		return tree.rotateRight(z)
	}
}

// walk from p to the root refreshing heights, restructuring every
// unbalanced node met on the way
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) {
	for nil != p {
		p.updateHeight()
		if p.isUnbalanced() {
			p = tree.restructure(p)
		}
		p = p.up
	}
}
