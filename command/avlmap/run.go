// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
)

// populate a map from the configuration, apply the deletions and
// log the result in both directions
func run(log *logger.L, conf *Configuration) (*avl.Map[int, int], error) {

	pool := (*avl.PoolAllocator[int, int])(nil)
	m := (*avl.Map[int, int])(nil)
	if conf.UsePool {
		pool = avl.NewPoolAllocator[int, int]()
		m = avl.NewWithAllocator[int, int](cmp.Compare[int], pool)
	} else {
		m = avl.New[int, int]()
	}

	for _, e := range conf.Data {
		if !m.Insert(e.Key, e.Value) {
			log.Debugf("overwrite key: %d  value: %d", e.Key, e.Value)
		}
	}
	log.Infof("inserted: %d  count: %d  height: %d", len(conf.Data), m.Count(), m.Height())

	for _, key := range conf.Delete {
		value, ok := m.Delete(key)
		if ok {
			log.Debugf("deleted key: %d  value: %d", key, value)
		} else {
			log.Debugf("delete key: %d  not present", key)
		}
	}

	if err := m.Check(); nil != err {
		log.Criticalf("tree check failed: %s", err)
		return nil, err
	}

	for it := m.Begin(); !it.IsEnd(); _ = it.Next() {
		log.Infof("forward: %d → %d", it.Key(), it.Value())
	}
	for r := m.RBegin(); !r.IsEnd(); _ = r.Next() {
		log.Tracef("backward: %d → %d", r.Key(), r.Value())
	}
	log.Infof("count: %d  height: %d", m.Count(), m.Height())

	if nil != pool {
		total, free := pool.Stats()
		log.Infof("pool nodes: %d  free: %d", total, free)
	}

	if conf.PrintTree {
		buffer := &bytes.Buffer{}
		depth := m.Print(buffer, true)
		s := bufio.NewScanner(buffer)
		for s.Scan() {
			log.Debugf("tree: %s", s.Text())
		}
		log.Debugf("tree depth: %d", depth)
	}

	return m, nil
}
