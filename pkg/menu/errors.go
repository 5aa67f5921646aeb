package menu

import "errors"

var (
	// ErrSelfParent is returned when an item is set as its own parent.
	ErrSelfParent = errors.New("item cannot be a child of itself")

	// ErrParentCycle is returned when the new parent is a descendant of the item.
	ErrParentCycle = errors.New("item cannot be a child of its own descendant")

	// ErrChildNotFound is returned when reading a child id that is not present.
	ErrChildNotFound = errors.New("child not found")

	// ErrRoot is returned by sibling operations invoked on an item without a parent.
	ErrRoot = errors.New("item is a root and has no parent")

	// ErrOrderUnset is returned when reading the order of an item that was never ordered.
	ErrOrderUnset = errors.New("order has not been set")
)
