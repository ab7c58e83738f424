// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - an independent copy of the map with the same shape, keys,
// values and heights, using the same compare function and allocator
//
// values are copied by assignment, so a value that is itself a
// reference (pointer, slice, map) is shared between the copies
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := NewWithAllocator[K, V](m.compare, m.allocator)
	c.root = c.copyTree(m.root, nil)
	c.count = m.count
	return c
}

// Assign - replace the contents of the map with a copy of another
// map; the previous nodes are returned to the allocator
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.Clear()
	m.compare = other.compare
	m.root = m.copyTree(other.root, nil)
	m.count = other.count
}

// internal: recursive copy, children first
func (m *Map[K, V]) copyTree(p *Node[K, V], up *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	n := m.newNode(p.key, p.value, up)
	n.left = m.copyTree(p.left, n)
	n.right = m.copyTree(p.right, n)
	n.height = p.height
	return n
}
