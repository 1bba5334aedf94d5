package petit

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// treeCharMatcher is a sorted-code-point-set CharMatcher backed by a
// red-black tree instead of a plain sorted slice, giving O(log n)
// inserts and lookups. It is only built by AnyInTree; the pattern
// compiler (pattern.go) and AnyIn do not use it.
type treeCharMatcher struct {
	tree *redblacktree.Tree
}

func newTreeCharMatcher(points []rune) treeCharMatcher {
	tree := redblacktree.NewWith(utils.IntComparator)
	for _, r := range points {
		tree.Put(int(r), struct{}{})
	}
	return treeCharMatcher{tree: tree}
}

func (m treeCharMatcher) Matches(r rune) bool {
	_, found := m.tree.Get(int(r))
	return found
}

func (m treeCharMatcher) String() string {
	return fmt.Sprintf("TreeSet(%d code points)", m.tree.Size())
}

func (m treeCharMatcher) Equal(other CharMatcher) bool {
	o, ok := other.(treeCharMatcher)
	if !ok || m.tree.Size() != o.tree.Size() {
		return false
	}
	for _, k := range m.tree.Keys() {
		if _, found := o.tree.Get(k); !found {
			return false
		}
	}
	return true
}

// AnyInTree is a tree-backed counterpart of AnyIn, exercising
// treeCharMatcher instead of the plain sorted-slice setCharMatcher.
func AnyInTree(elements string, msg ...string) Parser {
	m := fmt.Sprintf("any of %q expected", elements)
	if len(msg) > 0 {
		m = msg[0]
	}
	return newCharacterParser(newTreeCharMatcher([]rune(elements)), m)
}
