// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - on-disk archive of scheduling results
//
// This maintains a LevelDB database split into pools.  Each pool has
// a single byte prefix prepended to its keys.
//
// Notes:
// 1. ++     = concatenation of byte data
// 2. digest = hex SHA-256 of the raw input file (64 bytes)
//
// Solutions:
//
//	S ++ digest   - result of scheduling one input
//	                data: JSON encoded Record
//
// Version:
//
//	0x00 ++ "VERSION"   - big endian uint32 database version
package storage
