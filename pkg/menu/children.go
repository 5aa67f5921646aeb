package menu

import "slices"

// children is an insertion-ordered map of child items keyed by id.
// Overwriting an existing key keeps its original position.
type children struct {
	keys  []string
	items map[string]*Item
}

func (c *children) len() int {
	return len(c.keys)
}

func (c *children) get(id string) (*Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *children) put(id string, it *Item) {
	if c.items == nil {
		c.items = make(map[string]*Item)
	}
	if _, ok := c.items[id]; !ok {
		c.keys = append(c.keys, id)
	}
	c.items[id] = it
}

func (c *children) remove(id string) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	if i := slices.Index(c.keys, id); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
}

func (c *children) reset() {
	c.keys = nil
	c.items = nil
}

func (c *children) asSlice() []*Item {
	out := make([]*Item, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.items[k])
	}
	return out
}
