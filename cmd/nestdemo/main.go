// Command nestdemo is a terminal rendition of the counters demo: a store
// with a count and a nestable list of counters that can be added,
// doubled, updated and removed.
//
// Commands, one per line on stdin:
//
//	add N         append a counter starting at N
//	double I      double the counter at index I
//	set I N       set the counter at index I to N
//	remove I      remove the counter at index I
//	replace N...  replace every counter
//	find ID       look a counter up by id
//	inc           add 2 to the store count
//	list          print the counters
//	quit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hasbyte1/go-nestable/config"
	"github.com/hasbyte1/go-nestable/metrics"
	"github.com/hasbyte1/go-nestable/nestable"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nestdemo: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []nestable.Option{nestable.WithMode(cfg.Mode)}
	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg, cfg.Metrics.Namespace)
		if err != nil {
			logger.Error("metrics disabled", "err", err)
		} else {
			opts = append(opts, nestable.WithHooks(rec))
			srv := serveMetrics(cfg.Metrics.Addr, reg, logger)
			defer shutdown(srv)
		}
	}

	if err := run(ctx, os.Stdin, os.Stdout, logger, opts...); err != nil {
		logger.Error("nestdemo failed", "err", err)
		os.Exit(1)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
