// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - access to a single prefixed table
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
//
// the write is synchronous; the front cache is updated afterwards so
// reads never observe a value the database does not hold
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Put nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Put(prefixedKey, value, nil)
	logger.PanicIfError("pool.Put", err)
	poolData.cache.Set(dbPut, string(prefixedKey), value)
}

// PutN - store a big endian uint64 record
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		logger.Panic("pool.Delete nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Delete(prefixedKey, nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.Set(dbDelete, string(prefixedKey), nil)
}

// Get - read a value for a given key
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return nil
	}
	prefixedKey := p.prefixKey(key)

	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return value
	}

	value, err := poolData.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)

	poolData.cache.Set(dbPut, string(prefixedKey), value)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return false
	}
	prefixedKey := p.prefixKey(key)

	if _, found := poolData.cache.Get(string(prefixedKey)); found {
		return true
	}

	value, err := poolData.db.Has(prefixedKey, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
