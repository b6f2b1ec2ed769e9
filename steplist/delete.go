// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package steplist

// Remove - unlink a key
//
// returns false if the key was not present
func (list *List) Remove(key uint64) bool {
	l, ok := list.links[key]
	if !ok {
		return false
	}

	if Sentinel == l.prev {
		list.head = l.next
	} else {
		p := list.links[l.prev]
		p.next = l.next
		list.links[l.prev] = p
	}

	if Sentinel == l.next {
		list.tail = l.prev
	} else {
		n := list.links[l.next]
		n.prev = l.prev
		list.links[l.next] = n
	}

	delete(list.links, key)
	return true
}
