// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/schedule"
)

// Record - the outcome of scheduling one input
type Record struct {
	Digest      string                `json:"digest"`
	File        string                `json:"file"`
	Strategy    string                `json:"strategy"`
	Slots       int                   `json:"slots"`
	Solved      bool                  `json:"solved"`
	Assignments []schedule.Assignment `json:"assignments"`
	Stats       schedule.Stats        `json:"stats"`
	Timestamp   time.Time             `json:"timestamp"`
}

// Digest - key for an input file's content
func Digest(content []byte) string {
	d := sha256.Sum256(content)
	return hex.EncodeToString(d[:])
}

// Store - save a record under its digest, replacing any earlier one
func Store(record *Record) error {
	if nil == record || "" == record.Digest {
		return fault.ErrInvalidStructPointer
	}
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}
	Pool.Solutions.Put([]byte(record.Digest), data)
	return nil
}

// Fetch - read the record for a digest
func Fetch(digest string) (*Record, error) {
	data := Pool.Solutions.Get([]byte(digest))
	if nil == data {
		return nil, fault.ErrKeyNotFound
	}
	record := &Record{}
	if err := json.Unmarshal(data, record); nil != err {
		return nil, err
	}
	return record, nil
}

// History - all stored records in digest order
func History() ([]Record, error) {
	records := []Record{}
	var decodeError error
	err := Pool.Solutions.Each(func(element Element) bool {
		var record Record
		if err := json.Unmarshal(element.Value, &record); nil != err {
			decodeError = err
			return false
		}
		records = append(records, record)
		return true
	})
	if nil != err {
		return nil, err
	}
	if nil != decodeError {
		return nil, decodeError
	}
	return records, nil
}
