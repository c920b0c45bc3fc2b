// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// Node - a node in the tree
type Node[K, V any] struct {
	left     *Node[K, V] // left sub-tree
	right    *Node[K, V] // right sub-tree
	up       *Node[K, V] // points to parent node, never owning
	key      K           // key part for ordering
	value    V           // value part for data storage
	height   int         // 1 + height of the taller sub-tree
	released bool        // set once the node has left the tree
}

// Stats - node accounting for a tree
type Stats struct {
	Allocated uint64 `json:"allocated"`
	Released  uint64 `json:"released"`
	Live      uint64 `json:"live"`
}

// per-tree node accounting
type allocator[K, V any] struct {
	allocated counter.Counter
	released  counter.Counter
}

// allocate a new leaf node attached below up
func (a *allocator[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	a.allocated.Increment()
	return &Node[K, V]{
		up:     up,
		key:    key,
		value:  value,
		height: 1,
	}
}

// release a node that has been unlinked from the tree
//
// all links are cleared so a stale pointer held by a caller cannot
// keep the rest of the tree reachable
func (a *allocator[K, V]) freeNode(node *Node[K, V]) {
	if node.released {
		panic("avl: node released twice")
	}
	node.left = nil
	node.right = nil
	node.up = nil
	node.height = 0
	node.released = true
	a.released.Increment()
}

// Stats - number of nodes allocated and released over the life of
// the tree
func (tree *Tree[K, V]) Stats() Stats {
	allocated := tree.alloc.allocated.Uint64()
	released := tree.alloc.released.Uint64()
	return Stats{
		Allocated: allocated,
		Released:  released,
		Live:      allocated - released,
	}
}
