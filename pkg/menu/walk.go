package menu

import (
	"cmp"
	"errors"
	"slices"
)

// SkipChildren is returned by a WalkFunc to skip the children of the
// current item. It is never returned by Walk.
var SkipChildren = errors.New("skip children")

// WalkFunc is called by Walk for every item of a subtree.
type WalkFunc func(it *Item) error

// Walk visits the item and its descendants depth-first, pre-order, in
// insertion order. The first error other than SkipChildren stops the walk
// and is returned.
func (it *Item) Walk(fn WalkFunc) error {
	if err := fn(it); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, ch := range it.children.asSlice() {
		if err := ch.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Sorted returns the children ordered by their order value. Ties keep
// insertion order and children without an order come last.
func (it *Item) Sorted() []*Item {
	out := it.children.asSlice()
	slices.SortStableFunc(out, func(a, b *Item) int {
		switch {
		case a.orderSet && b.orderSet:
			return cmp.Compare(a.order, b.order)
		case a.orderSet:
			return -1
		case b.orderSet:
			return 1
		}
		return 0
	})
	return out
}
