// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node[K, V]) Next() *Node[K, V] {
	if tree.right != nil {
		return tree.right.first()
	}
	// climb until arriving from a left child
	up := tree.up
	for up != nil && tree == up.right {
		tree = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node[K, V]) Prev() *Node[K, V] {
	if tree.left != nil {
		return tree.left.last()
	}
	up := tree.up
	for up != nil && tree == up.left {
		tree = up
		up = up.up
	}
	return up
}

// Iterator - an in-order cursor over a tree
//
// The zero value is the end iterator.  An iterator must not be used
// after an insert that rotated or any delete on the same tree.
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// Begin - iterator at the lowest key, equal to End for an empty tree
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.first()}
}

// Final - iterator at the highest key, equal to End for an empty tree
func (tree *Tree[K, V]) Final() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.last()}
}

// End - the iterator one past the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Find - iterator at the key, or End if it is not present
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: tree.search(key)}
}

// Walk - call f for each item in key order until it returns false
func (tree *Tree[K, V]) Walk(f func(key K, value V) bool) {
	for p := tree.root.first(); nil != p; p = p.Next() {
		if !f(p.key, p.value) {
			return
		}
	}
}

// Keys - all keys in order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// IsEnd - true if there are no more items
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Equal - true if both iterators are at the same node
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Next - advance to the next highest key, the end iterator stays at
// the end
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.Next()}
}

// Prev - step back to the next lowest key, stepping back from the
// lowest key gives the end iterator
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.Prev()}
}

// Node - the node under the iterator, nil at the end
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Key - key at the iterator, panics at the end
func (it Iterator[K, V]) Key() K {
	return it.deref().key
}

// Value - value at the iterator, panics at the end
func (it Iterator[K, V]) Value() V {
	return it.deref().value
}

// SetValue - replace the value at the iterator, panics at the end
func (it Iterator[K, V]) SetValue(value V) {
	it.deref().value = value
}

func (it Iterator[K, V]) deref() *Node[K, V] {
	if nil == it.node {
		panic(fault.ErrEndIterator)
	}
	return it.node
}
