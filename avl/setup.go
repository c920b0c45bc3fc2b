// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"strings"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Strategy - selects how a tree is maintained after updates
type Strategy int

// the supported strategies
const (
	Balanced Strategy = iota // AVL height balanced
	Plain                    // unbalanced binary search tree
)

// String - name of the strategy, as accepted by ParseStrategy
func (s Strategy) String() string {
	switch s {
	case Balanced:
		return "avl"
	case Plain:
		return "plain"
	default:
		return "unknown"
	}
}

// ParseStrategy - convert a name into a strategy
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "avl", "balanced":
		return Balanced, nil
	case "plain", "bst", "unbalanced":
		return Plain, nil
	default:
		return Balanced, fault.ErrInvalidStrategy
	}
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root      *Node[K, V]
	count     int
	compare   func(a, b K) int
	strategy  Strategy
	alloc     allocator[K, V]
	rotations counter.Counter
}

// New - create an initially empty AVL tree ordered by the natural
// ordering of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty AVL tree ordered by compare,
// which must return a negative, zero or positive value as a is less
// than, equal to or greater than b
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return NewWithStrategy[K, V](Balanced, compare)
}

// NewPlain - create an initially empty unbalanced tree ordered by the
// natural ordering of the key type
func NewPlain[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewPlainFunc[K, V](cmp.Compare[K])
}

// NewPlainFunc - create an initially empty unbalanced tree ordered by
// compare
func NewPlainFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return NewWithStrategy[K, V](Plain, compare)
}

// NewWithStrategy - create an initially empty tree
func NewWithStrategy[K, V any](strategy Strategy, compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:     nil,
		count:    0,
		compare:  compare,
		strategy: strategy,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Strategy - how this tree is maintained
func (tree *Tree[K, V]) Strategy() Strategy {
	return tree.strategy
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.root.safeHeight()
}

// Rotations - number of rebalancing rotations performed so far, a
// double rotation counts once
func (tree *Tree[K, V]) Rotations() uint64 {
	return tree.rotations.Uint64()
}

// Clear - release every node, leaving an empty tree
//
// all outstanding iterators and node pointers become invalid
func (tree *Tree[K, V]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order so children are released before their parent
func (tree *Tree[K, V]) release(p *Node[K, V]) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.alloc.freeNode(p)
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - stored height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
