// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Search - find the node holding a specific key, nil if not present
func (m *Map[K, V]) Search(key K) *Node[K, V] {
	return m.search(key, m.root)
}

func (m *Map[K, V]) search(key K, p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	switch c := m.compare(p.key, key); {
	case c > 0: // p.key > key
		return m.search(key, p.left)
	case c < 0: // p.key < key
		return m.search(key, p.right)
	default:
		return p
	}
}

// Get - the value stored for key
func (m *Map[K, V]) Get(key K) (V, error) {
	p := m.search(key, m.root)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// GetPtr - writable reference to the value stored for key
func (m *Map[K, V]) GetPtr(key K) (*V, error) {
	p := m.search(key, m.root)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return &p.value, nil
}

// Contains - true if key is present
func (m *Map[K, V]) Contains(key K) bool {
	return nil != m.search(key, m.root)
}
