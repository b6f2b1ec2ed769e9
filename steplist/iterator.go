// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package steplist

// Next - the key following the given key
//
// Next(Sentinel) is the head; returns the sentinel at the end or if
// the key is not present
func (list *List) Next(key uint64) uint64 {
	if Sentinel == key {
		return list.head
	}
	l, ok := list.links[key]
	if !ok {
		return Sentinel
	}
	return l.next
}

// Previous - the key preceding the given key
//
// Previous(Sentinel) is the tail; returns the sentinel at the start
// or if the key is not present
func (list *List) Previous(key uint64) uint64 {
	if Sentinel == key {
		return list.tail
	}
	l, ok := list.links[key]
	if !ok {
		return Sentinel
	}
	return l.prev
}

// Ascend - call a function on each key in ascending order
//
// iteration stops early if the function returns false
func (list *List) Ascend(f func(key uint64) bool) {
	for key := list.head; Sentinel != key; key = list.links[key].next {
		if !f(key) {
			return
		}
	}
}

// Keys - all keys in ascending order
func (list *List) Keys() []uint64 {
	keys := make([]uint64, 0, len(list.links))
	list.Ascend(func(key uint64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
