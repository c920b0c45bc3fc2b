// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	return tree.search(key)
}

// Get - the value stored for a key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// Contains - true if the key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}

func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
