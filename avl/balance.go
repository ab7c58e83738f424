// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero for an empty one
func height[K any, V any](p *Node[K, V]) uint32 {
	if nil == p {
		return 0
	}
	return p.height
}

// right height minus left height: -1, 0, +1 in a balanced tree
func balanceFactor[K any, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return int(height(p.right)) - int(height(p.left))
}

// recompute the cached height from the children
// must be called after any child link of p changes
func fixHeight[K any, V any](p *Node[K, V]) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// single left rotation, returns the new sub-tree root
//
//	  p              q
//	 / \            / \
//	a   q    →     p   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[K any, V any](p *Node[K, V]) *Node[K, V] {
	q := p.right
	p.right = q.left
	if nil != p.right {
		p.right.up = p
	}
	q.left = p

	q.up = p.up
	p.up = q

	fixHeight(p)
	fixHeight(q)
	return q
}

// single right rotation, mirror of rotateLeft
func rotateRight[K any, V any](q *Node[K, V]) *Node[K, V] {
	p := q.left
	q.left = p.right
	if nil != q.left {
		q.left.up = q
	}
	p.right = q

	p.up = q.up
	q.up = p

	fixHeight(q)
	fixHeight(p)
	return p
}

// restore the balance of a node whose children are balanced and whose
// height is current, returns the possibly updated sub-tree root
func rebalance[K any, V any](p *Node[K, V]) *Node[K, V] {
	switch balanceFactor(p) {
	case +2: // right branch too high
		if -1 == balanceFactor(p.right) {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	case -2: // left branch too high
		if +1 == balanceFactor(p.left) {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	default:
		return p
	}
}
