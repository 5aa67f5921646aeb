package menu

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMockTree() *Item {
	root := New("", false)
	root.AddChild("c", 30).SetLabel("C")
	b := root.AddChild("b", 10).SetLabel("B")
	b.AddChild("b2", 2).SetLabel("B2")
	b.AddChild("b1", 1).SetLabel("B1")
	root.AddChild("a", 10).SetLabel("A")
	return root
}

func TestWalkPreOrderInsertionOrder(t *testing.T) {
	root := createMockTree()
	var seen []string
	require.NoError(t, root.Walk(func(it *Item) error {
		seen = append(seen, it.ID())
		return nil
	}))
	assert.Equal(t, []string{"", "c", "b", "b2", "b1", "a"}, seen)
}

func TestWalkSkipChildren(t *testing.T) {
	root := createMockTree()
	var seen []string
	require.NoError(t, root.Walk(func(it *Item) error {
		seen = append(seen, it.ID())
		if it.ID() == "b" {
			return SkipChildren
		}
		return nil
	}))
	assert.Equal(t, []string{"", "c", "b", "a"}, seen)
}

func TestWalkStopsOnError(t *testing.T) {
	root := createMockTree()
	stop := errors.New("stop")
	n := 0
	err := root.Walk(func(it *Item) error {
		n++
		if it.ID() == "b2" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 4, n)
}

func TestSortedByOrder(t *testing.T) {
	root := createMockTree()
	root.SetChildren(append(root.Children(), New("unordered", false))...)

	assert.Equal(t, []string{"b", "a", "c", "unordered"}, ids(root.Sorted()))
	// insertion order is untouched
	assert.Equal(t, []string{"c", "b", "a", "unordered"}, ids(root.Children()))
}

func TestDump(t *testing.T) {
	root := createMockTree()
	out := Dump(root)
	t.Logf("tree =\n%s", out)
	assert.Contains(t, out, "<root>")
	assert.Contains(t, out, `b "B" #10`)
	assert.Contains(t, out, `b1 "B1" #1`)
	assert.Less(t, strings.Index(out, "b1"), strings.Index(out, "b2"))
}

func TestNewView(t *testing.T) {
	root := createMockTree()
	b, err := root.Child("b")
	require.NoError(t, err)
	b.SetRoute("b_route", map[string]any{"id": 1}).
		SetLinkAttr(Attributes{"class": "x"}).
		SetExtra("icon", "fa-b").
		SetRoles("ROLE_ADMIN")

	v := NewView(root)
	require.Len(t, v.Children, 3)
	assert.Nil(t, v.Order)
	assert.Equal(t, "b", v.Children[0].ID)
	assert.Equal(t, 1, v.Children[0].Level)
	require.NotNil(t, v.Children[0].Order)
	assert.Equal(t, 10, *v.Children[0].Order)
	assert.Equal(t, "b1", v.Children[0].Children[0].ID)
	assert.Equal(t, "b_route", v.Children[0].Route.Name)

	data, err := json.Marshal(v.Children[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "b", "label": "B", "order": 10, "level": 1,
		"route": {"name": "b_route", "params": {"id": 1}},
		"linkAttr": {"class": "x"},
		"extra": {"icon": "fa-b"},
		"roles": ["ROLE_ADMIN"],
		"children": [
			{"id": "b1", "label": "B1", "order": 1, "level": 2},
			{"id": "b2", "label": "B2", "order": 2, "level": 2}
		]
	}`, string(data))
}
