// Package main implements the wiring demo binary: two named actions, Ping
// and Pong, connected through a declarative wiring file, exchanging a ball
// message over the deferred delivery queue until a rally budget runs out.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/c360/signalkit/action"
	"github.com/c360/signalkit/config"
	"github.com/c360/signalkit/metric"
	"github.com/c360/signalkit/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "signalkit-demo"
)

//go:embed demo.yaml
var defaultWiring []byte

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting wiring demo",
		"version", Version,
		"config_path", cliCfg.ConfigPath,
		"max_rally", cliCfg.MaxRally)

	wiring, err := loadWiring(cliCfg.ConfigPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metricsRegistry := metric.NewMetricsRegistry()

	// Buffered wakeup channel: the notifier must never block the enqueue
	// path, and one pending wakeup is enough to drain everything.
	wake := make(chan struct{}, 1)
	hub := wire.New(
		wire.WithMetrics(metricsRegistry.CoreMetrics()),
		wire.WithNotifier(func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		}),
	)

	registry := action.NewRegistry()
	defer registry.Clear()
	m := newMatch(cliCfg.MaxRally)

	ping, err := newPlayer("Ping", hub, registry, m, logger)
	if err != nil {
		return err
	}
	pong, err := newPlayer("Pong", hub, registry, m, logger)
	if err != nil {
		return err
	}

	if err := wiring.Apply(hub); err != nil {
		return err
	}
	slog.Info("Wiring applied", "links", len(wiring.Links), "actions", registry.Names())

	g, ctx := errgroup.WithContext(ctx)

	if cliCfg.MetricsPort > 0 {
		g.Go(func() error {
			return serveMetrics(ctx, cliCfg.MetricsPort, metricsRegistry)
		})
	}

	g.Go(func() error {
		defer stop()
		return pump(ctx, hub, wake, ping, m, cliCfg.RallyRate)
	})

	err = g.Wait()
	slog.Info("Match finished",
		"ping_hits", ping.Hits(),
		"pong_hits", pong.Hits(),
		"queue_pending", hub.Queue().Len())
	return err
}

// pump is the single logical thread the hub contract requires: the hub and
// everything wired into it is touched only from here once the rally
// starts.
func pump(ctx context.Context, hub *wire.Hub, wake <-chan struct{}, server *Player, m *match, perSecond float64) error {
	limiter := rate.NewLimiter(rate.Limit(perSecond), 1)

	server.Serve()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.Done():
			return nil
		case <-wake:
		}
		for {
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			if !hub.ProcessNext() {
				break
			}
			select {
			case <-m.Done():
				return nil
			default:
			}
		}
	}
}

func serveMetrics(ctx context.Context, port int, registry *metric.MetricsRegistry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry.PrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("Metrics server listening", "port", port)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func loadWiring(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(defaultWiring)
	}
	return config.Load(path)
}
