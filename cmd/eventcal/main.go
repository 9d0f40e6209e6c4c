package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"eventcal/internal/calendar"
	"eventcal/internal/clock"
	"eventcal/internal/config"
	"eventcal/internal/ics"
	appLog "eventcal/internal/log"
	"eventcal/internal/metrics"
	"eventcal/internal/organizer"
)

// flagConfig holds CLI flag values; non-empty values override the config file.
type flagConfig struct {
	configPath string
	seedPath   string
	exportPath string
	logLevel   string
}

func main() {
	flags := parseFlags()

	conf := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		conf = loaded
	}

	if flags.seedPath != "" {
		conf.SeedPath = flags.seedPath
	}
	if flags.exportPath != "" {
		conf.ExportPath = flags.exportPath
	}
	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}

	level, ok := appLog.ParseLevel(conf.LogLevel)
	if !ok {
		appLog.Warn("unknown log level, using info", "log_level", conf.LogLevel)
	}
	appLog.SetLevel(level)

	appLog.Info("eventcal starting", "version", "0.1.0")
	appLog.Info("effective config",
		"institutional_domain", conf.InstitutionalDomain,
		"horizon_months", conf.HorizonMonths,
		"min_duration", conf.MinDuration,
		"max_duration", conf.MaxDuration,
		"initial_capacity", conf.InitialCapacity,
		"seed", conf.SeedPath != "",
		"cache_dir", conf.CacheDir,
		"metrics_path", conf.MetricsPath,
		"export_path", conf.ExportPath,
	)

	clk := clock.NewSystem()
	stats := metrics.New()
	cal := calendar.New(calendar.WithInitialCapacity(conf.InitialCapacity))
	org := organizer.New(cal,
		organizer.WithRules(conf.Rules()),
		organizer.WithClock(clk),
		organizer.WithOutput(os.Stdout),
		organizer.WithMetrics(stats),
	)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if conf.SeedPath != "" {
		fetcher := ics.NewFetcher(conf.CacheDir, nil)
		events, err := ics.Load(ctx, fetcher, conf.SeedPath, ics.Window(clk.Now(), conf.HorizonMonths))
		if err != nil {
			appLog.Error("failed to load seed calendar", err)
			os.Exit(1)
		}
		org.Seed(events)
	}

	exitCode := 0
	if err := org.Run(ctx, os.Stdin); err != nil {
		if errors.Is(err, context.Canceled) {
			appLog.Info("signal received, shutting down")
		} else {
			appLog.Error("organizer stopped", err)
			exitCode = 1
		}
	}

	if conf.ExportPath != "" {
		if err := ics.ExportFile(conf.ExportPath, cal.Snapshot(), clk.Now()); err != nil {
			appLog.Error("failed to export calendar", err, "export_path", conf.ExportPath)
			exitCode = 1
		}
	}
	if conf.MetricsPath != "" {
		if err := stats.WriteTextfile(conf.MetricsPath); err != nil {
			appLog.Error("failed to write metrics", err, "metrics_path", conf.MetricsPath)
			exitCode = 1
		}
	}

	appLog.Info("eventcal exiting", "events", cal.Count())
	stop()
	os.Exit(exitCode)
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (built-in defaults if empty)")
	flag.StringVar(&cfg.seedPath, "seed", "", "iCalendar file or http(s) feed to import before reading commands")
	flag.StringVar(&cfg.exportPath, "export", "", "iCalendar file written when the organizer stops")
	flag.StringVar(&cfg.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	return cfg
}
