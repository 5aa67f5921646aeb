package menu

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/menutree/pkg/metric"
)

// Menu is a named menu tree served over HTTP.
type Menu struct {
	// Title is the menu
	Title string `json:"title"`

	// Description of the menu
	Description string `json:"description,omitempty"`

	// Version of the menu
	Version string `json:"version,omitempty"`

	// Root is the root item of the tree; its children are the top level entries.
	Root *Item `json:"-"`

	requests metric.IncrementalCounter
}

// Size returns the number of items below the root.
func (m *Menu) Size() int {
	if m.Root == nil {
		return 0
	}
	n := -1
	_ = m.Root.Walk(func(*Item) error {
		n++
		return nil
	})
	return n
}

// document is the JSON representation of a Menu.
type document struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Items       []View `json:"items,omitempty"`
}

// ToJSON returns a JSON-serializable representation of the menu.
// Items are sorted by their order at every level.
func (m *Menu) ToJSON() interface{} {
	doc := document{
		Title:       m.Title,
		Description: m.Description,
		Version:     m.Version,
	}
	if m.Root != nil {
		doc.Items = NewView(m.Root).Children
	}
	return doc
}

// WithMetrics registers the request counter and the item gauge of the menu with reg.
// The gauge walks the tree on every scrape.
func (m *Menu) WithMetrics(reg prometheus.Registerer) *Menu {
	m.requests = metric.NewCounterWithRegistry(reg,
		"menu_requests_total", "Number of menu requests by endpoint and status.",
		"endpoint", "status")
	metric.NewGaugeFuncWithRegistry(reg, "menu_items", "Number of items in the menu tree.",
		func() float64 { return float64(m.Size()) })
	return m
}

func (m *Menu) count(endpoint string, status int) {
	if m.requests != nil {
		m.requests.Increment(endpoint, strconv.Itoa(status))
	}
}

// Handler returns an HTTP handler that responds with the menu structure as JSON.
func (m *Menu) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		m.count("menu", writeJSON(w, http.StatusOK, m.ToJSON()))
	})
}

// ItemHandler returns an HTTP handler that responds with the subtree found
// at the path value "path", a slash separated list of child ids starting
// below the root.
func (m *Menu) ItemHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.PathValue("path")
		slog.Info("handling item request",
			"method", r.Method,
			"path", path,
		)

		it, err := m.Lookup(path)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrChildNotFound) {
				status = http.StatusNotFound
			}
			slog.Error("item lookup failed", "path", path, "error", err)
			m.count("item", writeError(w, status, err.Error()))
			return
		}

		m.count("item", writeJSON(w, http.StatusOK, NewView(it)))
	})
}

// Lookup resolves a slash separated id path from the root. An empty path
// resolves to the root.
func (m *Menu) Lookup(path string) (*Item, error) {
	if m.Root == nil {
		return nil, ErrChildNotFound
	}
	it := m.Root
	for _, id := range strings.Split(strings.Trim(path, "/"), "/") {
		if id == "" {
			continue
		}
		ch, err := it.Child(id)
		if err != nil {
			return nil, err
		}
		it = ch
	}
	return it, nil
}

// writeJSON marshals data before writing the header so that an encoding
// failure turns into a 500 instead of an empty 200. It returns the status
// that was sent.
func writeJSON(w http.ResponseWriter, status int, data interface{}) int {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		return writeError(w, http.StatusInternalServerError, "error, see logs for details")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		slog.Error("failed to write JSON response", "error", err)
		return status
	}

	slog.Debug("json response sent", "status", status)
	return status
}

func writeError(w http.ResponseWriter, status int, message string) int {
	slog.Error("handling error response",
		"status", status,
		"message", message,
	)

	body, _ := json.Marshal(map[string]string{"error": message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
	return status
}
