// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - load whitespace separated keys into an ordered map and
// inspect the resulting tree
//
// keys are read from the file given by --file, or from standard
// input; a key that occurs more than once is stored once and its
// value counts the occurrences
//
//   avltool --file=keys.txt print
//   avltool --plain --file=keys.txt check
//   avltool list < keys.txt
//   avltool --file=keys.txt remove KEY...
package main
