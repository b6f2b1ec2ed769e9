// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package steplist

// Insert - add a key keeping ascending order
//
// returns false if the key was already present or is the sentinel
func (list *List) Insert(key uint64) bool {
	if Sentinel == key {
		return false
	}
	if _, ok := list.links[key]; ok {
		return false
	}

	// empty list
	if Sentinel == list.head {
		list.links[key] = link{prev: Sentinel, next: Sentinel}
		list.head = key
		list.tail = key
		return true
	}

	// append: the usual case as keys arrive in non-decreasing order
	if key > list.tail {
		list.linkAfter(list.tail, key)
		return true
	}

	// prepend
	if key < list.head {
		l := list.links[list.head]
		l.prev = key
		list.links[list.head] = l
		list.links[key] = link{prev: Sentinel, next: list.head}
		list.head = key
		return true
	}

	// interior: walk from whichever end is nearer
	if key-list.head <= list.tail-key {
		after := list.head
		for {
			next := list.links[after].next
			if next > key {
				break
			}
			after = next
		}
		list.linkAfter(after, key)
	} else {
		before := list.tail
		for {
			prev := list.links[before].prev
			if prev < key {
				break
			}
			before = prev
		}
		list.linkAfter(list.links[before].prev, key)
	}
	return true
}

// internal: place key immediately after an existing key
func (list *List) linkAfter(after uint64, key uint64) {
	a := list.links[after]
	next := a.next

	a.next = key
	list.links[after] = a
	list.links[key] = link{prev: after, next: next}

	if Sentinel == next {
		list.tail = key
	} else {
		n := list.links[next]
		n.prev = key
		list.links[next] = n
	}
}
