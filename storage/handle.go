// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

// PoolHandle - one prefixed section of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

func newPoolHandle(prefix byte) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
	}
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		fault.Panic("pool.Put nil database")
		return
	}
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Put(prefixedKey, value, nil)
	fault.PanicIfError("pool.Put", err)
	poolData.cache.Set(dbPut, string(prefixedKey), value)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	prefixedKey := p.prefixKey(key)
	err := poolData.db.Delete(prefixedKey, nil)
	fault.PanicIfError("pool.Delete", err)
	poolData.cache.Set(dbDelete, string(prefixedKey), []byte{})
}

// Get - read a value for a given key, nil if not present
//
// this returns the actual element - copy the result if it must be preserved
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	prefixedKey := p.prefixKey(key)
	if value, found := poolData.cache.Get(string(prefixedKey)); found {
		return value
	}
	value, err := poolData.db.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	fault.PanicIfError("pool.Get", err)
	poolData.cache.Set(dbPut, string(prefixedKey), value)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	return nil != p.Get(key)
}

// Each - call f for every element of the pool in key order, the
// prefix is removed from the keys; stop when f returns false
func (p *PoolHandle) Each(f func(element Element) bool) error {
	poolData.RLock()
	defer poolData.RUnlock()

	searchRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}
	iter := poolData.db.NewIterator(&searchRange, nil)
	defer iter.Release()

	for iter.Next() {
		key := iter.Key()
		value := iter.Value()

		// copies, the iterator reuses its buffers
		element := Element{
			Key:   append([]byte{}, key[1:]...),
			Value: append([]byte{}, value...),
		}
		if !f(element) {
			break
		}
	}
	return iter.Error()
}
