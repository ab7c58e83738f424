// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (m *Map[K, V]) First() *Node[K, V] {
	return m.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (m *Map[K, V]) Last() *Node[K, V] {
	return m.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// Without a right branch the successor is the first ancestor reached
// from its left branch, i.e. the first ancestor with a higher key.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.left == p { // up.key > p.key
			return up
		}
		p = up
	}
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for {
		up := p.up
		if up == nil {
			return nil
		}
		if up.right == p { // up.key < p.key
			return up
		}
		p = up
	}
}
