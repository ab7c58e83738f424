// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func TestIteratorForward(t *testing.T) {
	m := scenarioA()

	keys := []int{}
	values := []int{}
	for it := m.Begin(); !it.Equal(m.End()); {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
		require.NoError(t, it.Next(), "next")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, keys, "keys")
	assert.Equal(t, []int{0, -1, -101, 10, 10, 30}, values, "values")

	end := m.End()
	err := end.Next()
	assert.Equal(t, fault.ErrIteratorOutOfRange, err, "advance end")
	assert.True(t, fault.IsErrRange(err), "error class")
	assert.True(t, end.IsEnd(), "end moved")
}

func TestIteratorBackward(t *testing.T) {
	m := scenarioA()

	keys := []int{}
	it := m.End()
	for {
		if err := it.Prev(); nil != err {
			assert.True(t, fault.IsErrRange(err), "error class")
			break
		}
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, keys, "keys")
	assert.True(t, it.Equal(m.Begin()), "retreat past first moved the cursor")
}

func TestIteratorEmpty(t *testing.T) {
	m := avl.New[int, int]()

	assert.True(t, m.Begin().Equal(m.End()), "begin != end")
	assert.True(t, m.RBegin().Equal(m.REnd()), "rbegin != rend")
	assert.True(t, m.RBegin().IsEnd(), "rbegin not at end")

	it := m.End()
	assert.Equal(t, fault.ErrIteratorOutOfRange, it.Prev(), "retreat on empty")

	assert.Panics(t, func() {
		_ = m.End().Key()
	}, "dereference of end")
}

func TestIteratorWrite(t *testing.T) {
	m := scenarioA()

	for it := m.Begin(); !it.IsEnd(); _ = it.Next() {
		*it.ValuePtr() *= 2
	}
	_, values := collect(m)
	assert.Equal(t, []int{0, -2, -202, 20, 20, 60}, values, "values")
}

func TestReverseIterator(t *testing.T) {
	m := scenarioA()

	keys := []int{}
	for r := m.RBegin(); !r.Equal(m.REnd()); {
		keys = append(keys, r.Key())
		require.NoError(t, r.Next(), "next")
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, keys, "keys")

	rend := m.REnd()
	assert.True(t, rend.IsEnd(), "rend")
	assert.Equal(t, fault.ErrIteratorOutOfRange, rend.Next(), "advance rend")

	// step back from rend to the lowest key
	require.NoError(t, rend.Prev(), "prev from rend")
	assert.Equal(t, 0, rend.Key(), "lowest key")

	rbegin := m.RBegin()
	assert.Equal(t, 5, rbegin.Key(), "highest key")
	assert.Equal(t, fault.ErrIteratorOutOfRange, rbegin.Prev(), "retreat rbegin")
	assert.True(t, rbegin.Base().IsEnd(), "base of rbegin")

	*rbegin.ValuePtr() = 99
	v, _ := m.Get(5)
	assert.Equal(t, 99, v, "write through reverse cursor")
}

func TestConstIterators(t *testing.T) {
	m := scenarioA()

	keys := []int{}
	for c := m.CBegin(); !c.Equal(m.CEnd()); {
		keys = append(keys, c.Key())
		require.NoError(t, c.Next(), "next")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, keys, "keys")

	values := []int{}
	for c := m.CRBegin(); !c.Equal(m.CREnd()); {
		values = append(values, c.Value())
		require.NoError(t, c.Next(), "next")
	}
	assert.Equal(t, []int{30, 10, 10, -101, -1, 0}, values, "values")

	c := m.CEnd()
	require.NoError(t, c.Prev(), "prev from end")
	assert.Equal(t, 5, c.Key(), "last")
	assert.False(t, c.IsEnd(), "end")
}

func TestBackwardRange(t *testing.T) {
	m := scenarioA()

	keys := []int{}
	for k := range m.Backward() {
		keys = append(keys, k)
		if 2 == k {
			break
		}
	}
	assert.Equal(t, []int{5, 4, 3, 2}, keys, "keys")
}

// cursors on nodes untouched by a mutation stay valid
func TestIteratorSurvivesMutation(t *testing.T) {
	m := avl.New[int, int]()
	for i := 0; i < 100; i += 2 {
		m.Insert(i, i)
	}

	it := m.Begin()
	for it.Key() != 40 {
		require.NoError(t, it.Next(), "next")
	}

	// odd keys force rotations all over the tree
	for i := 1; i < 100; i += 2 {
		m.Insert(i, i)
	}
	for i := 0; i < 40; i += 1 {
		m.Delete(i)
	}
	require.NoError(t, m.Check(), "check")

	keys := []int{}
	for ; !it.IsEnd(); _ = it.Next() {
		keys = append(keys, it.Key())
	}
	require.Len(t, keys, 60, "remaining keys")
	for i, k := range keys {
		assert.Equal(t, 40+i, k, "key order")
	}
}
