// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K any, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	up     *Node[K, V] // points to parent node, never an owner
	key    K           // key part for ordering
	value  V           // value part for data storage
	height uint32      // height of the sub-tree rooted here
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// ValuePtr - writable reference to the value stored in a node
func (p *Node[K, V]) ValuePtr() *V {
	return &p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() uint32 {
	return height(p)
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if depth == 0 {
		return []*Node[K, V]{p}
	}
	nodes := []*Node[K, V]{}
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}
