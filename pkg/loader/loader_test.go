package loader

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/menutree/pkg/menu"
)

func TestLoadFile(t *testing.T) {
	m, err := LoadFile("testdata/admin.yaml")
	require.NoError(t, err)
	t.Logf("menu =\n%s", menu.Dump(m.Root))

	assert.Equal(t, "Admin", m.Title)
	assert.Equal(t, "v1", m.Version)
	assert.Equal(t, 5, m.Size())
	assert.True(t, m.Root.IsRoot())

	dash, err := m.Root.Child("dashboard")
	require.NoError(t, err)
	assert.True(t, dash.Event())
	o, err := dash.Order()
	require.NoError(t, err)
	assert.Equal(t, 0, o)
	assert.Equal(t, menu.Attributes{"class": "nav-item"}, dash.ListAttr())

	users, err := m.Root.Child("users")
	require.NoError(t, err)
	o, _ = users.Order()
	assert.Equal(t, 50, o)
	assert.Equal(t, []string{"ROLE_ADMIN"}, users.Roles())

	groups, err := m.Lookup("users/groups")
	require.NoError(t, err)
	assert.Equal(t, 2, groups.Level())
	assert.Equal(t, "fa-users", groups.Extra("icon"))
	assert.Equal(t, `<span class="badge">3</span>`, groups.LabelAfterHTML())
	r, ok := groups.Route()
	require.True(t, ok)
	assert.Equal(t, "admin_group_list", r.Name)
	assert.Equal(t, 1, r.Params["page"])

	list, err := m.Lookup("users/list")
	require.NoError(t, err)
	r, ok = list.Route()
	require.True(t, ok)
	assert.Empty(t, r.Params)

	help, err := m.Root.Child("help")
	require.NoError(t, err)
	o, _ = help.Order()
	assert.Equal(t, 2, o)
	assert.Equal(t, menu.Attributes{"target": "_blank"}, help.LinkAttr())
	assert.Equal(t, `<i class="ext"></i>`, help.LinkAfterHTML())
	_, ok = help.Route()
	assert.False(t, ok)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing id", "items:\n  - label: x\n"},
		{"duplicate id", "items:\n  - id: a\n  - id: a\n"},
		{"nested duplicate", "items:\n  - id: a\n    children:\n      - id: b\n      - id: b\n"},
		{"slash in id", "items:\n  - id: a/b\n"},
		{"route without name", "items:\n  - id: a\n    route:\n      params: {x: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load([]byte("items: [\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidDefinition)
}

func TestBuildSameIDUnderDifferentParents(t *testing.T) {
	m := Build(Definition{Items: []ItemDef{
		{ID: "a", Children: []ItemDef{{ID: "x"}}},
		{ID: "b", Children: []ItemDef{{ID: "x"}}},
	}})
	ax, err := m.Lookup("a/x")
	require.NoError(t, err)
	bx, err := m.Lookup("b/x")
	require.NoError(t, err)
	assert.NotSame(t, ax, bx)
	assert.False(t, ax.Event())
}

func TestLoadNonStringKeyedExtra(t *testing.T) {
	data := []byte(`
items:
  - id: shirts
    route:
      name: shop
      params:
        filter: {2: red}
    extra:
      sizes: {1: small, 2: {3: large}}
      tags: [{10: ten}]
`)
	m, err := Load(data)
	require.NoError(t, err)

	shirts, err := m.Root.Child("shirts")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"1": "small",
		"2": map[string]any{"3": "large"},
	}, shirts.Extra("sizes"))
	assert.Equal(t, []any{map[string]any{"10": "ten"}}, shirts.Extra("tags"))

	r, ok := shirts.Route()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"2": "red"}, r.Params["filter"])

	_, err = json.Marshal(m.ToJSON())
	assert.NoError(t, err)
}
