// Package loader builds menu trees from YAML definitions.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mchmarny/menutree/pkg/menu"
)

// ErrInvalidDefinition is returned when a definition fails validation.
var ErrInvalidDefinition = errors.New("invalid menu definition")

// Definition is the YAML document describing one menu.
type Definition struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Version     string    `yaml:"version"`
	Event       bool      `yaml:"event"`
	Items       []ItemDef `yaml:"items"`
}

// ItemDef describes one item and its children.
type ItemDef struct {
	ID             string          `yaml:"id"`
	Label          string          `yaml:"label"`
	LabelAfterHTML string          `yaml:"labelAfterHtml"`
	Link           string          `yaml:"link"`
	LinkAfterHTML  string          `yaml:"linkAfterHtml"`
	Order          *int            `yaml:"order"`
	Route          *RouteDef       `yaml:"route"`
	LinkAttr       menu.Attributes `yaml:"linkAttr"`
	ListAttr       menu.Attributes `yaml:"listAttr"`
	ChildAttr      menu.Attributes `yaml:"childAttr"`
	LabelAttr      menu.Attributes `yaml:"labelAttr"`
	Extra          map[string]any  `yaml:"extra"`
	Roles          []string        `yaml:"roles"`
	Children       []ItemDef       `yaml:"children"`
}

// RouteDef names a route and its parameters.
type RouteDef struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

// LoadFile reads a menu definition from a YAML file.
func LoadFile(path string) (*menu.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	m, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return m, nil
}

// Load parses a menu definition from YAML bytes and builds its tree.
func Load(data []byte) (*menu.Menu, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if err := Validate(def); err != nil {
		return nil, fmt.Errorf("validate menu %q: %w", def.Title, err)
	}

	m := Build(def)
	slog.Debug("menu loaded", "title", m.Title, "items", m.Size())

	return m, nil
}

// Validate checks that every item has an id that is unique among its siblings.
func Validate(def Definition) error {
	return validateItems(nil, def.Items)
}

func validateItems(path []string, items []ItemDef) error {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return fmt.Errorf("%w: item %d under /%s has no id",
				ErrInvalidDefinition, i, strings.Join(path, "/"))
		}
		if strings.Contains(it.ID, "/") {
			return fmt.Errorf("%w: id %q contains '/'", ErrInvalidDefinition, it.ID)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: duplicate id %q under /%s",
				ErrInvalidDefinition, it.ID, strings.Join(path, "/"))
		}
		seen[it.ID] = true
		if it.Route != nil && it.Route.Name == "" {
			return fmt.Errorf("%w: route of /%s has no name",
				ErrInvalidDefinition, strings.Join(append(path, it.ID), "/"))
		}
		if err := validateItems(append(path, it.ID), it.Children); err != nil {
			return err
		}
	}
	return nil
}

// Build creates the menu tree for a validated definition. Items without an
// explicit order are ordered by their position.
func Build(def Definition) *menu.Menu {
	root := menu.New("", def.Event)
	addItems(root, def.Items)

	return &menu.Menu{
		Title:       def.Title,
		Description: def.Description,
		Version:     def.Version,
		Root:        root,
	}
}

func addItems(parent *menu.Item, defs []ItemDef) {
	for _, d := range defs {
		var it *menu.Item
		if d.Order != nil {
			it = parent.AddChild(d.ID, *d.Order)
		} else {
			it = parent.AddChild(d.ID)
		}

		it.SetLabel(d.Label).
			SetLabelAfterHTML(d.LabelAfterHTML).
			SetLink(d.Link).
			SetLinkAfterHTML(d.LinkAfterHTML).
			SetLinkAttr(d.LinkAttr).
			SetListAttr(d.ListAttr).
			SetChildAttr(d.ChildAttr).
			SetLabelAttr(d.LabelAttr).
			SetRoles(d.Roles...)

		if d.Route != nil {
			params := make(map[string]any, len(d.Route.Params))
			for k, v := range d.Route.Params {
				params[k] = normalize(v)
			}
			it.SetRoute(d.Route.Name, params)
		}
		for k, v := range d.Extra {
			it.SetExtra(k, normalize(v))
		}

		addItems(it, d.Children)
	}
}

// normalize converts the map[any]any values yaml produces for mappings with
// non-string keys into map[string]any, recursing into maps and sequences,
// so that every loaded value can be encoded as JSON.
func normalize(v any) any {
	switch x := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
