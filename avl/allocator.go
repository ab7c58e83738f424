// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlmap/fault"
)

// Allocator - source of node storage for a map
//
// Allocate must return a node that is not linked into any tree; the
// map sets every field of the node before use.  Release receives a
// node that has been unlinked from its tree and will not be touched
// by the map again.
type Allocator[K any, V any] interface {
	Allocate() *Node[K, V]
	Release(*Node[K, V])
}

// HeapAllocator - allocate every node from the Go heap and leave
// released nodes to the garbage collector
type HeapAllocator[K any, V any] struct{}

// Allocate - a fresh node
func (HeapAllocator[K, V]) Allocate() *Node[K, V] {
	return new(Node[K, V])
}

// Release - nothing to do
func (HeapAllocator[K, V]) Release(*Node[K, V]) {}

// PoolAllocator - reuses reclaimed nodes if any are available
//
// The pool may be shared by several maps in different go routines.
type PoolAllocator[K any, V any] struct {
	sync.Mutex
	pool       *Node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created
	freeNodes  int         // number of nodes in the pool
}

// NewPoolAllocator - create an initially empty pool
func NewPoolAllocator[K any, V any]() *PoolAllocator[K, V] {
	return &PoolAllocator[K, V]{}
}

// Allocate - take a node from the pool or create a new one
func (a *PoolAllocator[K, V]) Allocate() *Node[K, V] {
	a.Lock()
	defer a.Unlock()

	if nil == a.pool {
		if 0 != a.freeNodes {
			fault.Panicf("pool corrupt: empty list but free count: %d", a.freeNodes)
		}
		a.totalNodes += 1
		return new(Node[K, V])
	}
	p := a.pool
	a.pool = p.up
	p.up = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p
}

// Release - reclaim a node and keep it in the pool
func (a *PoolAllocator[K, V]) Release(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.key = zeroKey // do not hold references for the collector
	node.value = zeroValue
	node.height = 0

	a.Lock()
	node.up = a.pool // use as free list pointer
	a.pool = node
	a.freeNodes += 1
	a.Unlock()
}

// Stats - total nodes ever created by the pool and the number
// currently waiting for reuse
func (a *PoolAllocator[K, V]) Stats() (total int, free int) {
	a.Lock()
	defer a.Unlock()
	return a.totalNodes, a.freeNodes
}
