package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/strata-web/strata"
	"github.com/strata-web/strata/examples/site"
	"github.com/strata-web/strata/internal/dev"
	"github.com/strata-web/strata/pkg/middleware"
)

func serveCmd() *cobra.Command {
	var (
		port      string
		staticDir string
		devMode   bool
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo site",
		Long: `Serve renders the demo site over HTTP.

In dev mode the document carries a render timestamp, static files are
never cached, and a live-reload websocket pushes changes to the browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel(devMode),
			}))

			cfg := strata.DefaultConfig()
			cfg.Shell = site.Shell()
			cfg.Static.Dir = staticDir
			cfg.DevMode = devMode
			cfg.Logger = logger
			if !devMode {
				cfg.Static.CacheControl = strata.CacheControlProduction
			}

			var reload *dev.ReloadServer
			if devMode {
				reload = dev.NewReloadServer()
				cfg.Shell.ExtraBody = dev.ClientScript
			}

			app := strata.New(cfg, site.Routes())
			app.Use(middleware.Prometheus(), middleware.OpenTelemetry())

			mux := chi.NewRouter()
			if !noMetrics {
				mux.Handle("/metrics", promhttp.Handler())
			}
			if reload != nil {
				mux.Handle(dev.ReloadPath, reload)

				watcher, err := dev.NewWatcher(staticDir, dev.DefaultDebounce, logger, reload.NotifyChange)
				if err != nil {
					return err
				}
				defer watcher.Close()
				defer reload.Close()
			}
			mux.Handle("/*", app)

			if port == "" {
				port = strata.PortFromEnv()
			}
			addr := ":" + port

			logger.Info("server starting", "addr", addr, "dev", devMode, "static", staticDir)
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default $PORT, then "+strata.DefaultPort+")")
	cmd.Flags().StringVar(&staticDir, "static", "examples/site/public", "static files directory")
	cmd.Flags().BoolVar(&devMode, "dev", false, "enable development mode")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable the /metrics endpoint")

	return cmd
}

func logLevel(devMode bool) slog.Level {
	if devMode {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
