// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the map
// returns the removed value and true, or a zero value and false if
// the key was not present
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var value V
	removed := false
	m.root, value, removed = m.delete(key, m.root)
	if removed {
		m.count -= 1
	}
	return value, removed
}

// internal delete routine
// returns the possibly updated sub-tree root
func (m *Map[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], V, bool) {
	var value V
	if nil == p { // key not in tree
		return nil, value, false
	}

	removed := false
	switch c := m.compare(p.key, key); {
	case c > 0: // p.key > key
		p.left, value, removed = m.delete(key, p.left)
	case c < 0: // p.key < key
		p.right, value, removed = m.delete(key, p.right)
	default: // found: delete p
		value = p.value // preserve the value part
		r := replacement(p)
		m.allocator.Release(p)
		if nil == r {
			return nil, value, true
		}
		fixHeight(r)
		return rebalance(r), value, true
	}

	if !removed {
		return p, value, false
	}

	fixHeight(p)
	return rebalance(p), value, true
}

// detach q from the tree and return the node that takes its place
//
// with a left branch the highest node of that branch is spliced out
// and installed in place of q; otherwise the right branch (possibly
// empty) moves up
func replacement[K any, V any](q *Node[K, V]) *Node[K, V] {
	if nil == q.left {
		r := q.right
		if nil != r {
			r.up = q.up
		}
		return r
	}

	left, r := removeLast(q.left)

	r.left = left
	r.right = q.right
	r.up = q.up
	if nil != r.left {
		r.left.up = r
	}
	if nil != r.right {
		r.right.up = r
	}
	return r
}

// unlink the highest node of a sub-tree, its left branch takes its
// place; returns the rebalanced sub-tree root and the unlinked node
func removeLast[K any, V any](p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.right {
		l := p.left
		if nil != l {
			l.up = p.up
		}
		p.left = nil
		p.up = nil
		return l, p
	}

	last := (*Node[K, V])(nil)
	p.right, last = removeLast(p.right)
	fixHeight(p)
	return rebalance(p), last
}
