// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new item into the map or overwrite the value of
// an existing key, returns true if a node was added
func (m *Map[K, V]) Insert(key K, value V) bool {
	added := false
	m.root, _, added = m.insert(key, value, true, m.root, nil)
	if added {
		m.count += 1
	}
	return added
}

// Index - writable reference to the value for key, a zero value is
// inserted first if the key is not present
//
// The reference stays valid until the key is deleted; rotations move
// links, never node storage.
func (m *Map[K, V]) Index(key K) *V {
	var zero V
	target := (*Node[K, V])(nil)
	added := false
	m.root, target, added = m.insert(key, zero, false, m.root, nil)
	if added {
		m.count += 1
	}
	return &target.value
}

// internal routine for insert
// returns the possibly rotated sub-tree root, the node holding key
// and whether that node was newly created
func (m *Map[K, V]) insert(key K, value V, overwrite bool, p *Node[K, V], up *Node[K, V]) (*Node[K, V], *Node[K, V], bool) {
	if nil == p { // insert new node
		p = m.newNode(key, value, up)
		return p, p, true
	}

	target := (*Node[K, V])(nil)
	added := false

	switch c := m.compare(p.key, key); {
	case c > 0: // p.key > key
		p.left, target, added = m.insert(key, value, overwrite, p.left, p)
	case c < 0: // p.key < key
		p.right, target, added = m.insert(key, value, overwrite, p.right, p)
	default:
		if overwrite {
			p.value = value
		}
		return p, p, false
	}

	if !added {
		return p, target, false // no structural change below
	}

	fixHeight(p)
	return rebalance(p), target, true
}
