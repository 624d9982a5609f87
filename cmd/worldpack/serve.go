// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/duskhollow/worldpack/internal/compose"
	"github.com/duskhollow/worldpack/internal/content"
	"github.com/duskhollow/worldpack/internal/loader"
	"github.com/duskhollow/worldpack/internal/logging"
	"github.com/duskhollow/worldpack/internal/observability"
	"github.com/duskhollow/worldpack/internal/registry"
	"github.com/duskhollow/worldpack/pkg/errutil"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the content pack and serve health and metrics endpoints",
		Long: `Loads the content pack into an in-memory registry and keeps it
resident. SIGHUP reloads the pack from disk; a failed reload keeps
the current snapshot. SIGINT or SIGTERM shuts down.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	addPackFlags(cmd.Flags())
	cmd.Flags().String("listen", ":9100", "observability listen address")
	return cmd
}

func runServe(ctx context.Context, cfg *Config) error {
	logging.SetDefault("worldpack", version, cfg.LogLevel, cfg.LogFormat)

	ldr, err := openPack(cfg)
	if err != nil {
		errutil.LogError(slog.Default(), "startup failed", err)
		return err
	}

	reg, err := ldr.LoadAll(ctx)
	if err != nil {
		errutil.LogError(slog.Default(), "startup failed", err)
		return err
	}
	handle := registry.NewHandle(reg)
	slog.Info("content pack resident", "snapshot", handle.Current().ID.String())

	srv, err := observability.NewServer(cfg.Listen,
		func() bool { return handle.Current() != nil },
		loader.RegisterMetrics, compose.RegisterMetrics)
	if err != nil {
		return err
	}
	srv.Handle("/zones/composed", composedZoneHandler(handle))

	errCh, err := srv.Start()
	if err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if stopErr := srv.Stop(stopCtx); stopErr != nil {
			errutil.LogError(slog.Default(), "shutdown failed", stopErr)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case serveErr, ok := <-errCh:
			if !ok {
				return nil
			}
			return serveErr
		case sig := <-sigCh:
			if sig != syscall.SIGHUP {
				slog.Info("shutting down", "signal", sig.String())
				return nil
			}
			reloadPack(ctx, cfg, handle)
		}
	}
}

// composedZoneHandler serves composed zone definitions as JSON. Query
// parameters: zone (required), dynamic_map, partial (repeatable).
func composedZoneHandler(handle *registry.Handle) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		zoneID, err := strconv.ParseUint(q.Get("zone"), 10, 32)
		if err != nil {
			http.Error(w, "invalid zone id", http.StatusBadRequest)
			return
		}

		var dynamicMap uint64
		if v := q.Get("dynamic_map"); v != "" {
			if dynamicMap, err = strconv.ParseUint(v, 10, 32); err != nil {
				http.Error(w, "invalid dynamic map id", http.StatusBadRequest)
				return
			}
		}

		extras := content.NewIDSet()
		for _, v := range q["partial"] {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				http.Error(w, "invalid partial id", http.StatusBadRequest)
				return
			}
			extras.Insert(uint32(id))
		}

		zone, err := compose.New(handle.Registry()).
			GetComposed(uint32(zoneID), uint32(dynamicMap), extras)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if zone == nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(zone); err != nil {
			slog.Warn("failed to write composed zone response", "error", err)
		}
	})
}

// reloadPack loads a fresh registry and swaps it in. On failure the
// previous snapshot stays active.
func reloadPack(ctx context.Context, cfg *Config, handle *registry.Handle) {
	ldr, err := openPack(cfg)
	if err == nil {
		var reg *registry.Registry
		reg, err = ldr.LoadAll(ctx)
		if err == nil {
			id := handle.Swap(reg)
			observability.RecordPackReload("ok")
			slog.Info("content pack reloaded", "snapshot", id.String())
			return
		}
	}

	observability.RecordPackReload("failed")
	errutil.LogError(slog.Default(), "pack reload failed, keeping current snapshot", err)
}
