package menu

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a human readable outline of the subtree rooted at it,
// children sorted by order. It is meant for debugging and test output.
func Dump(it *Item) string {
	p := tp.New()
	dump(p, it)
	return dumpLabel(it) + "\n" + p.String()
}

func dump(p tp.Tree, it *Item) {
	for _, ch := range it.Sorted() {
		if ch.children.len() == 0 {
			p.AddNode(dumpLabel(ch))
			continue
		}
		dump(p.AddBranch(dumpLabel(ch)), ch)
	}
}

func dumpLabel(it *Item) string {
	id := it.id
	if id == "" {
		id = "<root>"
	}
	if !it.orderSet {
		return fmt.Sprintf("%s %q", id, it.label)
	}
	return fmt.Sprintf("%s %q #%d", id, it.label, it.order)
}
