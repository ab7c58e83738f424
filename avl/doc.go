// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic ordered map held in an AVL balanced tree
// with the addition of parent pointers to allow iteration through
// the nodes in both directions without an auxiliary stack
//
// Note: an individual map is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree; after any structural
// change the heights are recomputed bottom-up and every node on the
// path back to the root is rebalanced by single or double rotation.
//
// An insert with an existing key overwrites the value in place.  A
// delete does not copy data around (a node with two children is
// replaced by its in-order predecessor node) so that iterators on
// nodes other than the deleted one remain valid.
package avl
