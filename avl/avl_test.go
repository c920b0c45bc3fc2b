// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/bitmark-inc/avltree/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"1720", "0506", "8382", "6774", "1042",
	}
	for i := 0; i < 40; i += 1 {
		addList = append(addList, "1042")
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	r := rand.New(rand.NewSource(8133))
	addList := make([]string, 0, 250)
	for i := 0; i < cap(addList); i += 1 {
		addList = append(addList, fmt.Sprintf("%04d", r.Intn(10000)))
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// ascending and descending runs are the worst case for an
// unbalanced tree
func TestListSorted(t *testing.T) {
	ascending := make([]string, 0, 100)
	descending := make([]string, 0, 100)
	for i := 0; i < 100; i += 1 {
		ascending = append(ascending, fmt.Sprintf("%03d", i))
		descending = append(descending, fmt.Sprintf("%03d", 99-i))
	}
	doList(t, ascending)
	doTraverse(t, ascending)
	doList(t, descending)
	doTraverse(t, descending)
}

func checkTree(t *testing.T, tree *avl.Tree[string, string], title string) {
	if !tree.Check() {
		t.Errorf("%s: inconsistent tree", title)
		var buffer bytes.Buffer
		depth := tree.Fprint(&buffer, true)
		t.Logf("depth: %d\n%s", depth, buffer.String())
		t.Fatal("inconsistent tree")
	}
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New[string, string]()
		for _, key := range addList {
			tree.Insert(key, "data:"+key)
			if !tree.IsBalanced() {
				t.Fatalf("add: %q unbalanced tree", key)
			}
		}

		checkTree(t, tree, "add")

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
			if !tree.IsBalanced() {
				t.Fatalf("delete: %q unbalanced tree", key)
			}
		}

		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, ok := tree.Delete(key)
			ev := "data:" + key
			if !ok || dv != ev {
				t.Fatalf("delete returned: %q  expected: %q", dv, ev)
			}
		}
		if !tree.IsEmpty() {
			t.Errorf("remainder: remaining nodes")
			depth := tree.Print(true)
			t.Logf("depth: %d", depth)
			t.Fatal("remaining nodes")
		}
		if s := tree.Stats(); 0 != s.Live {
			t.Fatalf("live nodes after deleting everything: %+v", s)
		}
	}
}

// traverse the tree forwards and backwards to check iterators
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New[string, string]()
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key, "data:"+key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	n := 0
	it := tree.Begin()
	for i := 0; !it.Equal(tree.End()); i += 1 {
		if it.Key() != expected[i] {
			t.Fatalf("next item: actual: %q  expected: %q", it.Key(), expected[i])
		}
		if it.Value() != "data:"+expected[i] {
			t.Fatalf("next value: actual: %q  expected: %q", it.Value(), "data:"+expected[i])
		}
		n += 1
		it = it.Next()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}

	p := tree.Last()
	if nil == p {
		t.Fatalf("no last item")
	}

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if p.Key() != expected[i] {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}

	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Remove(key)
	}

	if !tree.IsEmpty() {
		t.Errorf("remainder: remaining nodes")
		depth := tree.Print(true)
		t.Logf("depth: %d", depth)
		t.Fatalf("remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

func TestRandomTree(t *testing.T) {

	r := rand.New(rand.NewSource(2200))

	randomTree(t, r, 2200, 2000)
	randomTree(t, r, 3400, 2760)
	randomTree(t, r, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, r, 2100, 2000)
	}
}

func randomTree(t *testing.T, r *rand.Rand, total int, toDelete int) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	tree := avl.New[string, string]()
	d := make([]string, toDelete)

	for i := 0; i < total; i += 1 {
		key := fmt.Sprintf("%04d", r.Intn(10000))
		if i < len(d) {
			d[i] = key
		}
		tree.Insert(key, "data:"+key)
	}

	checkTree(t, tree, "random add")

	for _, key := range d {
		tree.Remove(key)
		if !tree.IsBalanced() || !tree.CheckUp() {
			checkTree(t, tree, "random delete")
		}
	}
	checkTree(t, tree, "random delete")

	// add back the test value
	testKey := "500"
	const testValue = "just testing data: test 500 value"
	tree.Insert(testKey, testValue)

	checkTree(t, tree, "test value")

	doTraverse(t, d)

	// check that test value is searchable
	tv := tree.Search(testKey)
	if nil == tv {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if testKey != tv.Key() {
		t.Fatalf("test key mismatch: actual: %q  expected: %q", tv.Key(), testKey)
	}
	if testValue != tv.Value() {
		t.Fatalf("test value mismatch: actual: %q  expected: %q", tv.Value(), testValue)
	}

	// check iterators
	n := tv.Next()
	p := tv.Prev()
	if nil == n {
		t.Fatal("could not find next")
	}
	if nil == p {
		t.Fatal("could not find prev")
	}

	// delete the test value, and check it return the correct
	// value and is no longer in the tree
	value, _ := tree.Delete(testKey)
	if value != testValue {
		t.Fatalf("delete value mismatch: actual: %q  expected: %q", value, testValue)
	}
	tv = tree.Search(testKey)
	if nil != tv {
		t.Fatalf("test key not deleted and contains: %q", tv.Value())
	}
}

// check that inserted nodes can be overwritten
// and that nodes keep constant address when tree is re-balanced
func TestOverwriteAndNodeStability(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07", "08", "09", "10",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	checkTree(t, tree, "add")

	// overwrite a key
	oKey := "05"
	const newData = "new content for 05"
	if tree.Insert(oKey, newData) {
		t.Fatalf("overwrite of %q reported as a new node", oKey)
	}

	checkTree(t, tree, "overwrite")

	// check overwrite
	node1 := tree.Search(oKey)
	if newData != node1.Value() {
		t.Fatalf("node data actual: %q  expected: %q", node1.Value(), newData)
	}

	// delete nodes so the oKey node moves, "04" is the root and has
	// "05" as its successor
	for _, dKey := range []string{"04", "06", "02"} {
		tree.Remove(dKey)

		// ensure node did not get copied
		node2 := tree.Search(oKey)
		if node1 != node2 {
			t.Fatalf("node moved from: %p → %p", node1, node2)
		}
		checkTree(t, tree, "delete "+dKey)
	}
}

func TestGetDepthInTree(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if d := tree.First().Next().Depth(); d != 1 {
		t.Fatalf("incorrect node depth: %d", d)
	}

	if d := tree.First().Next().Next().Depth(); d != 2 {
		t.Fatalf("incorrect node depth: %d", d)
	}
}

func TestGetChildrenByDepth(t *testing.T) {
	addList := []string{
		"01", "02", "03", "04", "05",
		"06", "07",
	}

	tree := avl.New[string, string]()
	for _, key := range addList {
		tree.Insert(key, "data:"+key)
	}

	if len(tree.Root().GetChildrenByDepth(1)) != 2 {
		t.Fatalf("incorrect children number in depth 1")
	}

	if len(tree.Root().GetChildrenByDepth(2)) != 4 {
		t.Fatalf("incorrect children number in depth 2")
	}
}
