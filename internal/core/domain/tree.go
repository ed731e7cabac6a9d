package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StoryNode wraps one Story plus its ordered children. The node exclusively
// owns its children; parent linkage from the source record is only used
// during construction.
type StoryNode struct {
	Story    Story
	Children []*StoryNode
}

// BuildStoryTree converts a flat list of stories into a hierarchical forest.
//
// The algorithm is two-pass: every story is first indexed by ID into a node
// with an empty child list, then each story is attached to its parent when
// the parent is present in the same input set. Stories without a parent, or
// whose parent is not part of the input, become roots ("orphan promotion").
// A story whose parent ID equals its own ID is also promoted to root rather
// than becoming its own child.
//
// Every child list is sorted folders-first, then by ascending position, then
// by locale-aware name comparison. The function is pure and performs no I/O.
func BuildStoryTree(stories []Story) []*StoryNode {
	index := make(map[int64]*StoryNode, len(stories))
	for _, s := range stories {
		index[s.ID] = &StoryNode{Story: s}
	}

	roots := make([]*StoryNode, 0, len(stories))
	for _, s := range stories {
		node := index[s.ID]
		parent, ok := index[s.ParentID]
		if !ok || s.ParentID == s.ID {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	coll := collate.New(language.Und, collate.IgnoreCase)
	sortForest(roots, coll)
	return roots
}

// sortForest sorts a child list in place and recurses into every subtree.
func sortForest(nodes []*StoryNode, coll *collate.Collator) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Story, nodes[j].Story
		if a.IsFolder != b.IsFolder {
			return a.IsFolder
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return coll.CompareString(a.Name, b.Name) < 0
	})
	for _, n := range nodes {
		sortForest(n.Children, coll)
	}
}

// CountNodes counts all nodes in a forest.
func CountNodes(nodes []*StoryNode) int {
	count := 0
	for _, n := range nodes {
		count += 1 + CountNodes(n.Children)
	}
	return count
}
