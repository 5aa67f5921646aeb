package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mchmarny/menutree/pkg/loader"
	"github.com/mchmarny/menutree/pkg/logger"
	"github.com/mchmarny/menutree/pkg/menu"
	"github.com/mchmarny/menutree/pkg/server"
)

const (
	// EnvVarPort overrides the default of the -port flag.
	EnvVarPort = "MENU_PORT"

	// EnvVarFile overrides the default of the -file flag.
	EnvVarFile = "MENU_FILE"
)

var (
	version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"
	commit  = "none"   // Set at build time via -ldflags "-X main.commit=commit"

	port = flag.Int("port", envInt(EnvVarPort, server.DefaultPort), "Port to run the server on")
	file = flag.String("file", os.Getenv(EnvVarFile), "YAML menu definition; a sample menu is served when empty")
	dump = flag.Bool("dump", false, "Print the menu tree and exit")
)

func main() {
	flag.Parse()

	logger.SetDefaultLogger("menutree", version)
	slog.Info("starting menutree", "commit", commit)

	m, err := makeMenu(*file)
	if err != nil {
		slog.Error("failed to build menu", "error", err)
		os.Exit(1)
	}

	if *dump {
		fmt.Println(menu.Dump(m.Root))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errLog := slog.NewLogLogger(slog.Default().Handler(), slog.LevelError)
	if err := m.Run(ctx, server.WithPort(*port), server.WithErrorLog(errLog)); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// makeMenu loads the menu from path, or builds the sample menu when path is empty.
func makeMenu(path string) (*menu.Menu, error) {
	if path != "" {
		return loader.LoadFile(path)
	}
	return sampleMenu()
}

// sampleMenu builds a small admin menu with the fluent child API.
func sampleMenu() (*menu.Menu, error) {
	root := menu.New("main", false)

	root.AddChild("dashboard").
		SetLabel("Dashboard").
		SetLink("/").
		SetListAttr(menu.Attributes{"class": "nav-item"})

	users := root.AddChild("users").
		SetLabel("Users").
		SetRoles("ROLE_ADMIN").
		SetChildAttr(menu.Attributes{"class": "submenu"})
	users.AddChild("list").
		SetLabel("All Users").
		SetRoute("admin_user_list", nil)
	users.AddChild("groups").
		SetLabel("Groups").
		SetRoute("admin_group_list", map[string]any{"page": 1})

	settings := root.AddChild("settings", 100).
		SetLabel("Settings").
		SetLabelAfterHTML(`<span class="badge">new</span>`).
		SetRoles("ROLE_ADMIN", "ROLE_SUPER_ADMIN")
	settings.AddChild("general").SetLabel("General").SetLink("/settings")
	sec, err := settings.AddChild("mail").SetLabel("Mail").SetLink("/settings/mail").
		AddSibling("security")
	if err != nil {
		return nil, fmt.Errorf("failed to add security settings: %w", err)
	}
	sec.SetLabel("Security").SetLink("/settings/security")

	return &menu.Menu{
		Title:       fmt.Sprintf("Admin Menu (%s)", version),
		Description: "Sample administration menu",
		Version:     version,
		Root:        root,
	}, nil
}

func envInt(name string, def int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return def
	}
	return v
}
