// Package catalog decides where a solved problem is filed in the notes tree.
package catalog

import (
	"strings"

	"dsa-notes/internal/domain/model"
)

// Folder names of the notes tree.
const (
	Arrays             = "arrays"
	Strings            = "strings"
	LinkedList         = "linked-list"
	StacksQueues       = "stacks-queues"
	Trees              = "trees"
	Graphs             = "graphs"
	DynamicProgramming = "dynamic-programming"
	Greedy             = "greedy"
	Backtracking       = "backtracking"
	BitManipulation    = "bit-manipulation"
	Math               = "math"
)

// Categories lists every folder Category can return.
var Categories = []string{
	Arrays, Strings, LinkedList, StacksQueues, Trees, Graphs,
	DynamicProgramming, Greedy, Backtracking, BitManipulation, Math,
}

var tagToCategory = map[string]string{
	"array":                Arrays,
	"hash-table":           Arrays,
	"string":               Strings,
	"linked-list":          LinkedList,
	"stack":                StacksQueues,
	"queue":                StacksQueues,
	"tree":                 Trees,
	"binary-tree":          Trees,
	"binary-search-tree":   Trees,
	"graph":                Graphs,
	"depth-first-search":   Graphs,
	"breadth-first-search": Graphs,
	"dynamic-programming":  DynamicProgramming,
	"greedy":               Greedy,
	"backtracking":         Backtracking,
	"bit-manipulation":     BitManipulation,
	"math":                 Math,
	"two-pointers":         Arrays,
	"sliding-window":       Arrays,
	"sorting":              Arrays,
	"heap-priority-queue":  StacksQueues,
	"trie":                 Trees,
	"union-find":           Graphs,
	"topological-sort":     Graphs,
}

type rule struct {
	match    func(slug string) bool
	category string
}

func containsAny(subs ...string) func(string) bool {
	return func(slug string) bool {
		for _, sub := range subs {
			if strings.Contains(slug, sub) {
				return true
			}
		}
		return false
	}
}

// precedence rules are checked against every tag before anything else.
var precedence = []rule{
	{containsAny("tree", "trie"), Trees},
	{containsAny("graph", "depth-first-search", "breadth-first-search"), Graphs},
}

// fallback rules are checked tag by tag when no exact table entry matched.
var fallback = []rule{
	{containsAny("tree"), Trees},
	{containsAny("graph"), Graphs},
	{containsAny("array"), Arrays},
	{containsAny("string"), Strings},
}

// Category maps an ordered list of tag slugs to exactly one folder name.
// It never fails: an empty or unrecognised list yields Arrays.
func Category(tagSlugs []string) string {
	slugs := make([]string, 0, len(tagSlugs))
	for _, s := range tagSlugs {
		slugs = append(slugs, strings.ToLower(strings.TrimSpace(s)))
	}

	for _, r := range precedence {
		for _, slug := range slugs {
			if r.match(slug) {
				return r.category
			}
		}
	}

	for _, slug := range slugs {
		if category, ok := tagToCategory[slug]; ok {
			return category
		}
	}

	for _, slug := range slugs {
		for _, r := range fallback {
			if r.match(slug) {
				return r.category
			}
		}
	}

	return Arrays
}

// CategoryFromTags is Category over topic tags.
func CategoryFromTags(tags []model.TopicTag) string {
	slugs := make([]string, 0, len(tags))
	for _, tag := range tags {
		slugs = append(slugs, tag.Slug)
	}
	return Category(slugs)
}
