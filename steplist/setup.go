// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package steplist

// Sentinel - the reserved boundary key, never a legitimate time-step
const Sentinel = ^uint64(0)

// neighbouring keys of one entry
type link struct {
	prev uint64
	next uint64
}

// List - type to hold an ordered set of step keys
type List struct {
	links map[uint64]link
	head  uint64
	tail  uint64
}

// New - create an initially empty list
func New() *List {
	return &List{
		links: make(map[uint64]link),
		head:  Sentinel,
		tail:  Sentinel,
	}
}

// IsEmpty - true if the list contains no keys
func (list *List) IsEmpty() bool {
	return 0 == len(list.links)
}

// Count - number of keys currently in the list
func (list *List) Count() int {
	return len(list.links)
}

// Head - the lowest key, or the sentinel if the list is empty
func (list *List) Head() uint64 {
	return list.head
}

// Tail - the highest key, or the sentinel if the list is empty
func (list *List) Tail() uint64 {
	return list.tail
}

// Exists - check if a key is present
func (list *List) Exists(key uint64) bool {
	_, ok := list.links[key]
	return ok
}
