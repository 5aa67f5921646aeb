package menu

import (
	"fmt"
	"maps"
	"slices"
)

// Attributes maps HTML attribute names to values for one rendered element.
type Attributes map[string]string

// Route names an external route and its parameters for deferred URL resolution.
type Route struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// Item is a single node of a menu tree. It carries presentation metadata
// for a renderer and owns its children. An Item with no parent is a root.
//
// Item is not safe for concurrent use; callers serialize whole-tree edits.
type Item struct {
	id             string
	label          string
	labelAfterHTML string
	link           string
	linkAfterHTML  string

	order    int
	orderSet bool

	route *Route

	linkAttr  Attributes
	listAttr  Attributes
	childAttr Attributes
	labelAttr Attributes

	// extra is untyped on purpose: it holds caller metadata the item knows nothing about.
	extra map[string]any
	roles []string

	children children

	// parent is a navigational back-reference; the parent's children map owns this item.
	parent *Item
	event  bool
}

// New creates an empty root item. The event flag is fixed for the lifetime
// of the item and inherited by every child created through AddChild.
func New(id string, event bool) *Item {
	return &Item{id: id, event: event}
}

func (it *Item) String() string {
	return fmt.Sprintf("(Item %q #ch=%d)", it.id, it.children.len())
}

// Event reports whether construction hooks should fire for this item.
func (it *Item) Event() bool {
	return it.event
}

// ID returns the identifier of the item, empty when cleared.
func (it *Item) ID() string {
	return it.id
}

// SetID reassigns the identifier. It does not re-key the item in its parent.
func (it *Item) SetID(id string) *Item {
	it.id = id
	return it
}

// Label returns the display text of the item.
func (it *Item) Label() string {
	return it.label
}

// SetLabel sets the display text. Renderers escape it.
func (it *Item) SetLabel(label string) *Item {
	it.label = label
	return it
}

// LabelAfterHTML returns the raw markup rendered right after the label.
func (it *Item) LabelAfterHTML() string {
	return it.labelAfterHTML
}

// SetLabelAfterHTML sets trusted markup; renderers must not escape it.
func (it *Item) SetLabelAfterHTML(html string) *Item {
	it.labelAfterHTML = html
	return it
}

// Link returns the target URL of the item. It is used as is when the item
// has no route.
func (it *Item) Link() string {
	return it.link
}

// SetLink sets the target URL of the item.
func (it *Item) SetLink(link string) *Item {
	it.link = link
	return it
}

// LinkAfterHTML returns the raw markup rendered right after the link.
func (it *Item) LinkAfterHTML() string {
	return it.linkAfterHTML
}

// SetLinkAfterHTML sets trusted markup; renderers must not escape it.
func (it *Item) SetLinkAfterHTML(html string) *Item {
	it.linkAfterHTML = html
	return it
}

// Order returns the sibling priority of the item, or ErrOrderUnset when it
// was never assigned directly or by being added as a child.
func (it *Item) Order() (int, error) {
	if !it.orderSet {
		return 0, fmt.Errorf("item %q: %w", it.id, ErrOrderUnset)
	}
	return it.order, nil
}

// HasOrder reports whether an order has been assigned.
func (it *Item) HasOrder() bool {
	return it.orderSet
}

// SetOrder sets the sibling priority. Duplicates and gaps among siblings
// are allowed; renderers sort by this value.
func (it *Item) SetOrder(order int) *Item {
	it.order = order
	it.orderSet = true
	return it
}

// Route returns the route of the item and whether one was set.
// Without a route, Link is used as is.
func (it *Item) Route() (Route, bool) {
	if it.route == nil {
		return Route{}, false
	}
	return Route{Name: it.route.Name, Params: maps.Clone(it.route.Params)}, true
}

// SetRoute replaces the route wholesale. A nil params map is stored as empty.
func (it *Item) SetRoute(name string, params map[string]any) *Item {
	p := make(map[string]any, len(params))
	maps.Copy(p, params)
	it.route = &Route{Name: name, Params: p}
	return it
}

// LinkAttr returns a copy of the attributes of the link element.
func (it *Item) LinkAttr() Attributes {
	return cloneAttr(it.linkAttr)
}

// SetLinkAttr merges attrs into the link attributes. Existing keys are
// overwritten, keys absent from attrs are kept.
func (it *Item) SetLinkAttr(attrs Attributes) *Item {
	it.linkAttr = mergeAttr(it.linkAttr, attrs)
	return it
}

// ListAttr returns a copy of the attributes of the list element.
func (it *Item) ListAttr() Attributes {
	return cloneAttr(it.listAttr)
}

// SetListAttr merges attrs into the list attributes.
func (it *Item) SetListAttr(attrs Attributes) *Item {
	it.listAttr = mergeAttr(it.listAttr, attrs)
	return it
}

// ChildAttr returns a copy of the attributes of the child container.
func (it *Item) ChildAttr() Attributes {
	return cloneAttr(it.childAttr)
}

// SetChildAttr merges attrs into the child container attributes.
func (it *Item) SetChildAttr(attrs Attributes) *Item {
	it.childAttr = mergeAttr(it.childAttr, attrs)
	return it
}

// LabelAttr returns a copy of the attributes of the label element.
func (it *Item) LabelAttr() Attributes {
	return cloneAttr(it.labelAttr)
}

// SetLabelAttr merges attrs into the label attributes.
func (it *Item) SetLabelAttr(attrs Attributes) *Item {
	it.labelAttr = mergeAttr(it.labelAttr, attrs)
	return it
}

func mergeAttr(dst, src Attributes) Attributes {
	if dst == nil {
		dst = make(Attributes, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

func cloneAttr(a Attributes) Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// Extra returns the extra value stored under name. When name is absent or
// holds nil it returns def[0], or false if no default is given.
func (it *Item) Extra(name string, def ...any) any {
	if v, ok := it.extra[name]; ok && v != nil {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return false
}

// SetExtra stores value under name, leaving other extra entries untouched.
func (it *Item) SetExtra(name string, value any) *Item {
	if it.extra == nil {
		it.extra = make(map[string]any)
	}
	it.extra[name] = value
	return it
}

// ExtraKeys returns the names of all extra entries in sorted order.
func (it *Item) ExtraKeys() []string {
	return slices.Sorted(maps.Keys(it.extra))
}

// Roles returns a copy of the role identifiers attached to the item.
func (it *Item) Roles() []string {
	return slices.Clone(it.roles)
}

// SetRoles adds roles to the existing set. Duplicates collapse and the
// first-seen order is kept.
func (it *Item) SetRoles(roles ...string) *Item {
	for _, r := range roles {
		if !slices.Contains(it.roles, r) {
			it.roles = append(it.roles, r)
		}
	}
	return it
}

// Parent returns the parent item or nil for a root.
func (it *Item) Parent() *Item {
	return it.parent
}

// SetParent links the item to parent. It fails without changing anything
// when parent is the item itself or one of its descendants. It does not
// detach the item from a previous parent's children.
func (it *Item) SetParent(parent *Item) error {
	if parent == it {
		return fmt.Errorf("item %q: %w", it.id, ErrSelfParent)
	}
	for p := parent; p != nil; p = p.parent {
		if p == it {
			return fmt.Errorf("item %q under %q: %w", it.id, parent.id, ErrParentCycle)
		}
	}
	it.parent = parent
	return nil
}

// IsRoot reports whether the item has no parent.
func (it *Item) IsRoot() bool {
	return it.parent == nil
}

// Level returns the depth of the item; a root is at level 0.
func (it *Item) Level() int {
	if it.parent == nil {
		return 0
	}
	return it.parent.Level() + 1
}

// Root returns the top-most ancestor of the item, or the item itself.
func (it *Item) Root() *Item {
	r := it
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild creates a new item with the given id, inheriting the event flag,
// and adds it as a child. The child's order is order[0] if given, otherwise
// the number of children before insertion. An existing child with the same
// id is replaced.
//
// AddChild returns the new child, so calls may be chained to build a branch.
func (it *Item) AddChild(id string, order ...int) *Item {
	child := New(id, it.event)
	it.attach(child, order)
	return child
}

// AddItem adds an existing item as a child, with the same ordering and
// replacement rules as AddChild. It fails when child is the item itself or
// one of its ancestors.
func (it *Item) AddItem(child *Item, order ...int) (*Item, error) {
	if child == nil {
		return nil, fmt.Errorf("item %q: nil child", it.id)
	}
	for p := it; p != nil; p = p.parent {
		if p == child {
			if p == it {
				return nil, fmt.Errorf("item %q: %w", it.id, ErrSelfParent)
			}
			return nil, fmt.Errorf("item %q under %q: %w", child.id, it.id, ErrParentCycle)
		}
	}
	it.attach(child, order)
	return child, nil
}

func (it *Item) attach(child *Item, order []int) {
	if len(order) > 0 {
		child.SetOrder(order[0])
	} else {
		child.SetOrder(it.children.len())
	}
	child.parent = it
	it.children.put(child.id, child)
}

// AddSibling adds a new child with the given id to the parent of the item.
// It returns ErrRoot when the item has no parent.
func (it *Item) AddSibling(id string, order ...int) (*Item, error) {
	if it.parent == nil {
		return nil, fmt.Errorf("item %q: %w", it.id, ErrRoot)
	}
	return it.parent.AddChild(id, order...), nil
}

// AddSiblingItem adds an existing item to the parent of the item.
func (it *Item) AddSiblingItem(child *Item, order ...int) (*Item, error) {
	if it.parent == nil {
		return nil, fmt.Errorf("item %q: %w", it.id, ErrRoot)
	}
	return it.parent.AddItem(child, order...)
}

// Children returns the children in insertion order, independent of their order value.
func (it *Item) Children() []*Item {
	return it.children.asSlice()
}

// ChildCount returns the number of children.
func (it *Item) ChildCount() int {
	return it.children.len()
}

// SetChildren replaces all children, keyed by each child's id. Neither
// parent links nor orders are touched.
func (it *Item) SetChildren(items ...*Item) *Item {
	it.children.reset()
	for _, ch := range items {
		if ch != nil {
			it.children.put(ch.id, ch)
		}
	}
	return it
}

// Has reports whether a child with the given id exists.
func (it *Item) Has(id string) bool {
	_, ok := it.children.get(id)
	return ok
}

// Child returns the child with the given id or ErrChildNotFound.
func (it *Item) Child(id string) (*Item, error) {
	ch, ok := it.children.get(id)
	if !ok {
		return nil, fmt.Errorf("item %q: child %q: %w", it.id, id, ErrChildNotFound)
	}
	return ch, nil
}

// Put is shorthand for AddChild(id, order).
func (it *Item) Put(id string, order int) *Item {
	return it.AddChild(id, order)
}

// Remove deletes the child with the given id, if present. The removed
// subtree stays intact and keeps its parent link.
func (it *Item) Remove(id string) {
	it.children.remove(id)
}
