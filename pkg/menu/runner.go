package menu

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mchmarny/menutree/pkg/server"
)

// Run serves the menu and blocks until the context is canceled or an error occurs.
// It registers the menu and item handlers, a health endpoint and the
// Prometheus metrics of the menu.
func (m *Menu) Run(ctx context.Context, opt ...server.Option) error {
	slog.Info("starting menu server", "title", m.Title, "version", m.Version)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m.WithMetrics(reg)

	opt = append(opt,
		server.WithHandler("GET /{$}", m.Handler()),
		server.WithHandler("GET /items/{path...}", m.ItemHandler()),
		server.WithSimpleHealth(),
		server.WithPrometheusMetrics(reg),
	)

	return server.New(opt...).Serve(ctx)
}
