// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - bidirectional cursor over a map in ascending key order
//
// A cursor with no current node is the end position, one past the
// highest key.  Deleting the node under a cursor invalidates it;
// other cursors stay valid across inserts and deletes.
type Iterator[K any, V any] struct {
	tree *Map[K, V]
	node *Node[K, V]
}

// Begin - cursor on the lowest key, equal to End for an empty map
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: m.root.first()}
}

// End - the end position
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: m, node: nil}
}

// IsEnd - true at the end position
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Node - the current node, nil at the end position
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Key - key at the current position
func (it Iterator[K, V]) Key() K {
	return it.current().key
}

// Value - value at the current position
func (it Iterator[K, V]) Value() V {
	return it.current().value
}

// ValuePtr - writable reference to the value at the current position
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.current().value
}

// Equal - true if both cursors denote the same node or both are at
// the end position
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Next - advance to the next higher key; advancing from the end
// position is an error and leaves the cursor unchanged
func (it *Iterator[K, V]) Next() error {
	if nil == it.node {
		return fault.ErrIteratorOutOfRange
	}
	it.node = it.node.Next()
	return nil
}

// Prev - step back to the next lower key; from the end position this
// is the highest key.  Stepping back from the lowest key is an error
// and leaves the cursor unchanged
func (it *Iterator[K, V]) Prev() error {
	var p *Node[K, V]
	if nil == it.node {
		p = it.tree.root.last()
	} else {
		p = it.node.Prev()
	}
	if nil == p {
		return fault.ErrIteratorOutOfRange
	}
	it.node = p
	return nil
}

func (it Iterator[K, V]) current() *Node[K, V] {
	if nil == it.node {
		fault.Panic("dereference of end iterator")
	}
	return it.node
}

// ConstIterator - cursor that cannot modify values
type ConstIterator[K any, V any] struct {
	it Iterator[K, V]
}

// CBegin - read only cursor on the lowest key
func (m *Map[K, V]) CBegin() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: m.Begin()}
}

// CEnd - read only end position
func (m *Map[K, V]) CEnd() ConstIterator[K, V] {
	return ConstIterator[K, V]{it: m.End()}
}

// IsEnd - true at the end position
func (c ConstIterator[K, V]) IsEnd() bool { return c.it.IsEnd() }

// Key - key at the current position
func (c ConstIterator[K, V]) Key() K { return c.it.Key() }

// Value - value at the current position
func (c ConstIterator[K, V]) Value() V { return c.it.Value() }

// Equal - same position
func (c ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool { return c.it.Equal(other.it) }

// Next - see Iterator.Next
func (c *ConstIterator[K, V]) Next() error { return c.it.Next() }

// Prev - see Iterator.Prev
func (c *ConstIterator[K, V]) Prev() error { return c.it.Prev() }

// ReverseIterator - cursor over a map in descending key order
//
// It wraps a forward cursor positioned one after the element it
// denotes, so RBegin wraps End and REnd wraps Begin.
type ReverseIterator[K any, V any] struct {
	base Iterator[K, V]
}

// RBegin - reverse cursor on the highest key
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: m.End()}
}

// REnd - reverse end position, one before the lowest key
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{base: m.Begin()}
}

// Base - the underlying forward cursor
func (r ReverseIterator[K, V]) Base() Iterator[K, V] {
	return r.base
}

// IsEnd - true at the reverse end position
func (r ReverseIterator[K, V]) IsEnd() bool {
	return nil == r.target()
}

// Key - key at the current position
func (r ReverseIterator[K, V]) Key() K {
	return r.current().key
}

// Value - value at the current position
func (r ReverseIterator[K, V]) Value() V {
	return r.current().value
}

// ValuePtr - writable reference to the value at the current position
func (r ReverseIterator[K, V]) ValuePtr() *V {
	return &r.current().value
}

// Equal - same position
func (r ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return r.base.Equal(other.base)
}

// Next - step to the next lower key
func (r *ReverseIterator[K, V]) Next() error {
	return r.base.Prev()
}

// Prev - step to the next higher key; stepping forward from the
// highest key is an error
func (r *ReverseIterator[K, V]) Prev() error {
	return r.base.Next()
}

// the node one before the base position
func (r ReverseIterator[K, V]) target() *Node[K, V] {
	if nil == r.base.node {
		return r.base.tree.root.last()
	}
	return r.base.node.Prev()
}

func (r ReverseIterator[K, V]) current() *Node[K, V] {
	p := r.target()
	if nil == p {
		fault.Panic("dereference of reverse end iterator")
	}
	return p
}

// CRBegin - read only reverse cursor on the highest key
func (m *Map[K, V]) CRBegin() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{r: m.RBegin()}
}

// CREnd - read only reverse end position
func (m *Map[K, V]) CREnd() ConstReverseIterator[K, V] {
	return ConstReverseIterator[K, V]{r: m.REnd()}
}

// ConstReverseIterator - descending cursor that cannot modify values
type ConstReverseIterator[K any, V any] struct {
	r ReverseIterator[K, V]
}

// IsEnd - true at the reverse end position
func (c ConstReverseIterator[K, V]) IsEnd() bool { return c.r.IsEnd() }

// Key - key at the current position
func (c ConstReverseIterator[K, V]) Key() K { return c.r.Key() }

// Value - value at the current position
func (c ConstReverseIterator[K, V]) Value() V { return c.r.Value() }

// Equal - same position
func (c ConstReverseIterator[K, V]) Equal(other ConstReverseIterator[K, V]) bool {
	return c.r.Equal(other.r)
}

// Next - see ReverseIterator.Next
func (c *ConstReverseIterator[K, V]) Next() error { return c.r.Next() }

// Prev - see ReverseIterator.Prev
func (c *ConstReverseIterator[K, V]) Prev() error { return c.r.Prev() }

// All - range over items in ascending key order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.root.first(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - range over items in descending key order
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := m.root.last(); nil != p; p = p.Prev() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
