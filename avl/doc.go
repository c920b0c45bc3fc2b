// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map held in a binary search tree with
// parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Any insert that rotates or any delete invalidates
//       iterators positioned on the affected path; using such an
//       iterator afterwards is a caller error.
//
// Two strategies share the same node type:
//
//   Balanced - AVL: every node keeps |height(left) - height(right)| <= 1
//              by single or double rotations after each update
//   Plain    - unbalanced binary search tree, nodes are only ever
//              attached as leaves and spliced out
//
// A value is associated with each key and is overwritten by an insert
// with the same key.  Delete does not copy keys or values between
// nodes: a node with two children exchanges its position with its
// in-order successor before being unlinked, so a node keeps its
// address for as long as it remains in the tree.
package avl
