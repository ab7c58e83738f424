// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// build a detached node with correct height from its children
func makeNode(key int, l *Node[int, int], r *Node[int, int]) *Node[int, int] {
	p := &Node[int, int]{key: key, value: key, left: l, right: r}
	if nil != l {
		l.up = p
	}
	if nil != r {
		r.up = p
	}
	fixHeight(p)
	return p
}

func TestHeightAndBalanceFactor(t *testing.T) {
	assert.Equal(t, uint32(0), height[int, int](nil), "nil height")
	assert.Equal(t, 0, balanceFactor[int, int](nil), "nil balance")

	p := makeNode(2, makeNode(1, nil, nil), nil)
	assert.Equal(t, uint32(2), p.height, "height")
	assert.Equal(t, -1, balanceFactor(p), "balance")

	p = makeNode(1, nil, makeNode(2, nil, makeNode(3, nil, nil)))
	assert.Equal(t, uint32(3), p.height, "height")
	assert.Equal(t, 2, balanceFactor(p), "balance")
}

func TestRotateLeft(t *testing.T) {
	b := makeNode(3, nil, nil)
	q := makeNode(4, b, makeNode(5, nil, nil))
	p := makeNode(2, makeNode(1, nil, nil), q)
	top := makeNode(10, p, nil)

	r := rotateLeft(p)
	top.left = r

	assert.Same(t, q, r, "new root")
	assert.Same(t, p, q.left, "old root moved down")
	assert.Same(t, b, p.right, "inner branch moved")
	assert.Same(t, p, b.up, "inner branch parent")
	assert.Same(t, q, p.up, "old root parent")
	assert.Same(t, top, q.up, "new root parent")
	assert.Equal(t, uint32(2), p.height, "old root height")
	assert.Equal(t, uint32(3), q.height, "new root height")
	assert.True(t, checkup(top, nil), "parent links")
}

func TestRotateRight(t *testing.T) {
	b := makeNode(3, nil, nil)
	p := makeNode(2, makeNode(1, nil, nil), b)
	q := makeNode(4, p, makeNode(5, nil, nil))

	r := rotateRight(q)

	assert.Same(t, p, r, "new root")
	assert.Same(t, q, p.right, "old root moved down")
	assert.Same(t, b, q.left, "inner branch moved")
	assert.Same(t, q, b.up, "inner branch parent")
	assert.Nil(t, p.up, "new root parent")
	assert.True(t, checkup(r, nil), "parent links")
}

func TestRebalanceDouble(t *testing.T) {
	// right-left case: 1 → 3 → 2
	p := makeNode(1, nil, makeNode(3, makeNode(2, nil, nil), nil))
	r := rebalance(p)
	assert.Equal(t, 2, r.key, "right-left root")
	assert.Equal(t, 1, r.left.key, "right-left left")
	assert.Equal(t, 3, r.right.key, "right-left right")
	assert.Equal(t, uint32(2), r.height, "height")
	assert.True(t, checkup(r, nil), "parent links")

	// left-right case: 3 → 1 → 2
	p = makeNode(3, makeNode(1, nil, makeNode(2, nil, nil)), nil)
	r = rebalance(p)
	assert.Equal(t, 2, r.key, "left-right root")
	assert.Equal(t, 1, r.left.key, "left-right left")
	assert.Equal(t, 3, r.right.key, "left-right right")
	assert.True(t, checkup(r, nil), "parent links")

	// balanced node is untouched
	p = makeNode(2, makeNode(1, nil, nil), nil)
	assert.Same(t, p, rebalance(p), "no rotation expected")
}

func TestPrint(t *testing.T) {
	m := New[int, string]()
	for i := 1; i <= 7; i += 1 {
		m.Insert(i, "v")
	}
	buffer := &bytes.Buffer{}
	depth := m.Print(buffer, true)
	assert.Equal(t, 3, depth, "depth")
	assert.Contains(t, buffer.String(), "|------+ 4 → v ^<nil>", "root line")
	assert.Equal(t, 7, bytes.Count(buffer.Bytes(), []byte("\n")), "lines")
}

func TestCheckDetectsDamage(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 15; i += 1 {
		m.Insert(i, i)
	}
	assert.NoError(t, m.Check(), "fresh tree")

	m.root.left.height += 1
	assert.Error(t, m.Check(), "height damage not found")
	fixHeight(m.root.left)

	saved := m.root.right.up
	m.root.right.up = nil
	assert.False(t, m.CheckUp(), "parent damage not found")
	m.root.right.up = saved

	m.root.left.key, m.root.right.key = m.root.right.key, m.root.left.key
	assert.Error(t, m.Check(), "order damage not found")
}
