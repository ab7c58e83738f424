// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// CheckUp - check the up pointers for consistency
func (m *Map[K, V]) CheckUp() bool {
	return checkup(m.root, nil)
}

// internal: consistency checker
func checkup[K any, V any](p *Node[K, V], up *Node[K, V]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree:
// parent links, cached heights, balance, strict key order and count
//
// returns nil or the first violation found
func (m *Map[K, V]) Check() error {
	if !m.CheckUp() {
		return fault.ErrInconsistentParent
	}
	n, err := m.checkNode(m.root)
	if nil != err {
		return err
	}
	if n != m.count {
		return fault.ErrCountMismatch
	}

	var previous *Node[K, V]
	for p := m.root.first(); nil != p; p = p.Next() {
		if nil != previous && m.compare(previous.key, p.key) >= 0 {
			return fault.ErrKeyOrder
		}
		previous = p
	}
	return nil
}

// internal: heights, balance and local ordering, returns node count
func (m *Map[K, V]) checkNode(p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := m.checkNode(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := m.checkNode(p.right)
	if nil != err {
		return 0, err
	}

	hl := height(p.left)
	hr := height(p.right)
	expected := hl + 1
	if hr > hl {
		expected = hr + 1
	}
	if p.height != expected {
		return 0, fault.ErrIncorrectHeight
	}
	if bf := balanceFactor(p); bf < -1 || bf > 1 {
		return 0, fault.ErrUnbalancedNode
	}
	if nil != p.left && m.compare(p.left.key, p.key) >= 0 {
		return 0, fault.ErrKeyOrder
	}
	if nil != p.right && m.compare(p.right.key, p.key) <= 0 {
		return 0, fault.ErrKeyOrder
	}
	return 1 + nl + nr, nil
}
