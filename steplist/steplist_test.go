// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package steplist_test

import (
	"crypto/rand"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/bitmark-inc/expiryd/steplist"
)

// compare list contents against an expected ascending key sequence
func checkKeys(t *testing.T, list *steplist.List, expected []uint64) {
	t.Helper()

	if len(expected) != list.Count() {
		t.Fatalf("count: %d  expected: %d", list.Count(), len(expected))
	}

	actual := list.Keys()
	for i, key := range expected {
		if key != actual[i] {
			t.Fatalf("key[%d]: %d  expected: %d", i, actual[i], key)
		}
	}

	// walk backwards over the same keys
	i := len(expected)
	for key := list.Tail(); steplist.Sentinel != key; key = list.Previous(key) {
		i -= 1
		if expected[i] != key {
			t.Fatalf("reverse key[%d]: %d  expected: %d", i, key, expected[i])
		}
	}
	if 0 != i {
		t.Fatalf("reverse walk covered %d keys too few", i)
	}
}

func TestEmptyList(t *testing.T) {
	list := steplist.New()

	if !list.IsEmpty() {
		t.Errorf("new list is not empty")
	}
	if steplist.Sentinel != list.Head() {
		t.Errorf("head of empty list: %d", list.Head())
	}
	if steplist.Sentinel != list.Tail() {
		t.Errorf("tail of empty list: %d", list.Tail())
	}
	if list.Remove(42) {
		t.Errorf("removed a key from an empty list")
	}
}

func TestAppendOrder(t *testing.T) {
	list := steplist.New()

	keys := []uint64{0, 3, 7, 100, 101, 5000}
	for _, key := range keys {
		if !list.Insert(key) {
			t.Fatalf("insert failed for: %d", key)
		}
	}
	checkKeys(t, list, keys)

	// duplicates are no-ops
	if list.Insert(100) {
		t.Errorf("duplicate insert succeeded")
	}
	checkKeys(t, list, keys)
}

func TestArbitraryInsert(t *testing.T) {
	list := steplist.New()

	for _, key := range []uint64{50, 10, 90, 70, 30, 20, 80, 60, 40} {
		list.Insert(key)
	}
	checkKeys(t, list, []uint64{10, 20, 30, 40, 50, 60, 70, 80, 90})

	if !list.Exists(40) {
		t.Errorf("inserted key is missing")
	}
	if list.Exists(45) {
		t.Errorf("absent key reported present")
	}
}

func TestSentinelNavigation(t *testing.T) {
	list := steplist.New()
	list.Insert(11)
	list.Insert(22)

	if 11 != list.Next(steplist.Sentinel) {
		t.Errorf("next of sentinel: %d  expected: 11", list.Next(steplist.Sentinel))
	}
	if 22 != list.Previous(steplist.Sentinel) {
		t.Errorf("previous of sentinel: %d  expected: 22", list.Previous(steplist.Sentinel))
	}
	if steplist.Sentinel != list.Next(22) {
		t.Errorf("next of tail is not the sentinel")
	}
	if steplist.Sentinel != list.Previous(11) {
		t.Errorf("previous of head is not the sentinel")
	}

	// the sentinel itself can never be stored
	if list.Insert(steplist.Sentinel) {
		t.Errorf("sentinel was inserted")
	}
}

func TestRemove(t *testing.T) {
	list := steplist.New()
	for _, key := range []uint64{1, 2, 3, 4, 5} {
		list.Insert(key)
	}

	list.Remove(1) // head
	checkKeys(t, list, []uint64{2, 3, 4, 5})

	list.Remove(5) // tail
	checkKeys(t, list, []uint64{2, 3, 4})

	list.Remove(3) // interior
	checkKeys(t, list, []uint64{2, 4})

	if list.Remove(3) {
		t.Errorf("removed an absent key")
	}

	list.Remove(2)
	list.Remove(4)
	if !list.IsEmpty() {
		t.Errorf("list is not empty after removing all keys")
	}
	if steplist.Sentinel != list.Head() || steplist.Sentinel != list.Tail() {
		t.Errorf("head/tail not reset after removing all keys")
	}
}

func TestAscendEarlyStop(t *testing.T) {
	list := steplist.New()
	for _, key := range []uint64{10, 20, 30, 40} {
		list.Insert(key)
	}

	visited := []uint64{}
	list.Ascend(func(key uint64) bool {
		visited = append(visited, key)
		return key < 20
	})
	if 2 != len(visited) || 20 != visited[1] {
		t.Errorf("unexpected visit sequence: %v", visited)
	}
}

// random insert/remove against a sorted reference
func TestRandomAgainstReference(t *testing.T) {
	list := steplist.New()
	present := map[uint64]bool{}

	buffer := make([]byte, 2)
	for i := 0; i < 2000; i += 1 {
		_, err := rand.Read(buffer)
		if nil != err {
			t.Fatalf("rand error: %s", err)
		}
		key := uint64(binary.BigEndian.Uint16(buffer))

		if present[key] {
			if list.Insert(key) {
				t.Fatalf("duplicate insert succeeded for: %d", key)
			}
			list.Remove(key)
			delete(present, key)
		} else {
			if !list.Insert(key) {
				t.Fatalf("insert failed for: %d", key)
			}
			present[key] = true
		}
	}

	expected := make([]uint64, 0, len(present))
	for key := range present {
		expected = append(expected, key)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i] < expected[j] })

	checkKeys(t, list, expected)
}
