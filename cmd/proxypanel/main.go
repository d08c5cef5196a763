package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jroosing/proxypanel/internal/api"
	"github.com/jroosing/proxypanel/internal/config"
	"github.com/jroosing/proxypanel/internal/logging"
	"github.com/jroosing/proxypanel/internal/notify"
	"github.com/jroosing/proxypanel/internal/panel"
	"github.com/jroosing/proxypanel/internal/service"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set PROXYPANEL_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		serviceURL = flag.String("service-url", "", "Override proxy-control service base URL")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Panel.Host = *host
	}
	if *port != 0 {
		cfg.Panel.Port = *port
	}
	if *serviceURL != "" {
		cfg.Service.BaseURL = *serviceURL
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})
	logger.Info("ProxyPanel starting",
		"host", cfg.Panel.Host,
		"port", cfg.Panel.Port,
		"service", cfg.Service.BaseURL,
	)

	notices := notify.NewCenter()
	client := service.NewClient(cfg.Service.BaseURL, cfg.Service.Timeout, notices, logger)
	engine := panel.NewEngine(client, panel.Options{
		StatusInterval:  cfg.Views.StatusInterval,
		LogsInterval:    cfg.Views.LogsInterval,
		CacheInterval:   cfg.Views.CacheInterval,
		FiltersInterval: cfg.Views.FiltersInterval,
		VisitsInterval:  cfg.Views.VisitsInterval,
		LogsLive:        cfg.Views.LogsLive,
		CacheLive:       cfg.Views.CacheLive,
	}, logger)
	defer engine.Close()

	server := api.New(cfg, engine, notices, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Info("panel listening", "addr", server.Addr())

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("panel stopped")
}
