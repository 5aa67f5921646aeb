package menu

// View is a read-only, JSON-serializable snapshot of an item and its
// subtree. Children are sorted by order.
type View struct {
	ID             string         `json:"id"`
	Label          string         `json:"label,omitempty"`
	LabelAfterHTML string         `json:"labelAfterHtml,omitempty"`
	Link           string         `json:"link,omitempty"`
	LinkAfterHTML  string         `json:"linkAfterHtml,omitempty"`
	Order          *int           `json:"order,omitempty"`
	Level          int            `json:"level"`
	Route          *Route         `json:"route,omitempty"`
	LinkAttr       Attributes     `json:"linkAttr,omitempty"`
	ListAttr       Attributes     `json:"listAttr,omitempty"`
	ChildAttr      Attributes     `json:"childAttr,omitempty"`
	LabelAttr      Attributes     `json:"labelAttr,omitempty"`
	Extra          map[string]any `json:"extra,omitempty"`
	Roles          []string       `json:"roles,omitempty"`
	Event          bool           `json:"event,omitempty"`
	Children       []View         `json:"children,omitempty"`
}

// NewView builds the view of it and its descendants.
func NewView(it *Item) View {
	v := View{
		ID:             it.id,
		Label:          it.label,
		LabelAfterHTML: it.labelAfterHTML,
		Link:           it.link,
		LinkAfterHTML:  it.linkAfterHTML,
		Level:          it.Level(),
		LinkAttr:       nilIfEmpty(it.linkAttr),
		ListAttr:       nilIfEmpty(it.listAttr),
		ChildAttr:      nilIfEmpty(it.childAttr),
		LabelAttr:      nilIfEmpty(it.labelAttr),
		Roles:          it.Roles(),
		Event:          it.event,
	}
	if it.orderSet {
		o := it.order
		v.Order = &o
	}
	if r, ok := it.Route(); ok {
		v.Route = &r
	}
	if len(it.extra) > 0 {
		v.Extra = make(map[string]any, len(it.extra))
		for k, x := range it.extra {
			v.Extra[k] = x
		}
	}
	for _, ch := range it.Sorted() {
		v.Children = append(v.Children, NewView(ch))
	}
	return v
}

func nilIfEmpty(a Attributes) Attributes {
	if len(a) == 0 {
		return nil
	}
	return cloneAttr(a)
}
