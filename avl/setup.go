// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Map - type to hold the root node of a tree
type Map[K any, V any] struct {
	root      *Node[K, V]
	count     int
	compare   func(a K, b K) int
	allocator Allocator[K, V]
}

// New - create an initially empty map for a naturally ordered key type
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty map ordered by a compare
// function returning <0, 0, >0 like strings.Compare
func NewFunc[K any, V any](compare func(a K, b K) int) *Map[K, V] {
	return NewWithAllocator[K, V](compare, HeapAllocator[K, V]{})
}

// NewWithAllocator - create an initially empty map whose nodes are
// obtained from and returned to a specific allocator
func NewWithAllocator[K any, V any](compare func(a K, b K) int, allocator Allocator[K, V]) *Map[K, V] {
	if nil == allocator {
		allocator = HeapAllocator[K, V]{}
	}
	return &Map[K, V]{
		root:      nil,
		count:     0,
		compare:   compare,
		allocator: allocator,
	}
}

// IsEmpty - true if map contains no data
func (m *Map[K, V]) IsEmpty() bool {
	return nil == m.root
}

// Count - number of nodes currently in the map
func (m *Map[K, V]) Count() int {
	return m.count
}

// Height - height of the tree, zero for an empty map
func (m *Map[K, V]) Height() uint32 {
	return height(m.root)
}

// Root - return the root node of the tree
func (m *Map[K, V]) Root() *Node[K, V] {
	return m.root
}

// Clear - remove all items returning their nodes to the allocator
func (m *Map[K, V]) Clear() {
	m.release(m.root)
	m.root = nil
	m.count = 0
}

// release a whole sub-tree, children before parents
func (m *Map[K, V]) release(p *Node[K, V]) {
	if nil == p {
		return
	}
	m.release(p.left)
	m.release(p.right)
	m.allocator.Release(p)
}

// obtain a detached node holding key and value
func (m *Map[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	p := m.allocator.Allocate()
	p.left = nil
	p.right = nil
	p.up = up
	p.key = key
	p.value = value
	p.height = 1
	return p
}
