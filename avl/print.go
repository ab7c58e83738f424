// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, rotated
// so the root is on the left and higher keys are above
// returns the maximum depth of the tree
func (m *Map[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, m.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K any, V any](w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := any(nil)
	if nil != p.up {
		up = p.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+2d/h%d\n", p.key, p.value, up, balanceFactor(p), p.height)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
