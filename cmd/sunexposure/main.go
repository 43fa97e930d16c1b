// sunexposure: an interactive vitamin D synthesis calculator.
//
// Computes the cutaneous synthesis rate from UV index, clothing
// coverage, sun adaptation and time of day, with derived safe-exposure
// thresholds and seasonal supplement guidance.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arnaudbellemare/sunexposure/internal/config"
	"github.com/arnaudbellemare/sunexposure/internal/database"
	"github.com/arnaudbellemare/sunexposure/internal/models"
	"github.com/arnaudbellemare/sunexposure/internal/services/history"
	"github.com/arnaudbellemare/sunexposure/internal/services/synthesis"
	"github.com/arnaudbellemare/sunexposure/internal/tui"
	"github.com/arnaudbellemare/sunexposure/internal/util"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

type options struct {
	configPath string
	debugMode  bool

	// One-shot report mode
	report     bool
	uvIndex    float64
	adaptation float64
	clothing   string
}

func main() {
	var (
		opts        options
		showVersion = flag.Bool("version", false, "Show version and exit")
	)
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&opts.debugMode, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.report, "report", false, "Print a single report and exit")
	flag.Float64Var(&opts.uvIndex, "uv", 9.0, "UV index for -report")
	flag.Float64Var(&opts.adaptation, "adaptation", 0.8, "Adaptation factor for -report")
	flag.StringVar(&opts.clothing, "clothing", "NUDE", "Clothing level for -report (NUDE, MINIMAL, LIGHT, MODERATE, HEAVY)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sunexposure version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		slog.Info("received shutdown signal", "signal", sig)
		cancel()

		time.AfterFunc(10*time.Second, func() {
			slog.Error("forced shutdown after timeout")
			os.Exit(1)
		})
	}()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sunexposure: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, cfgPath, err := config.Load(opts.configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := setupLogging(cfg, opts.debugMode); err != nil {
		return err
	}

	slog.Info("sunexposure starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	// Every output depends on the reference-timezone hour and month, so a
	// clock that cannot be built aborts the run.
	clock, err := util.NewLocalClock(cfg.Location.Timezone)
	if err != nil {
		return fmt.Errorf("initializing clock: %w", err)
	}

	engine := synthesis.NewEngine(cfg.Profile)

	if opts.report {
		return printReport(engine, clock, opts)
	}

	var journal *history.Service
	if cfg.History.Enabled {
		dbPath, err := config.EnsureDataDir(cfg)
		if err != nil {
			return fmt.Errorf("ensuring data directory: %w", err)
		}

		db, err := database.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer func() {
			slog.Info("closing database")
			if err := db.Close(); err != nil {
				slog.Error("error closing database", "error", err)
			}
		}()

		journal = history.NewService(db)

		pruned, err := journal.Prune(ctx, cfg.History.RetentionDays, clock.Now())
		if err != nil {
			slog.Warn("pruning old sessions failed", "error", err)
		} else if pruned > 0 {
			slog.Info("pruned old sessions", "count", pruned, "retention_days", cfg.History.RetentionDays)
		}
	} else {
		slog.Info("history disabled, sessions will not be journaled")
	}

	slog.Info("starting TUI", "timezone", cfg.Location.Timezone)

	if err := tui.Run(ctx, cfg, clock, engine, journal); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("sunexposure shutdown complete")
	return nil
}

// setupLogging routes structured logs to the configured file as JSON, or
// to stderr as text when no file is configured.
func setupLogging(cfg *config.Config, debugMode bool) error {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}

	var logHandler slog.Handler
	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}

		logHandler = slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		logHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		})
	}

	slog.SetDefault(slog.New(logHandler))
	return nil
}

// printReport runs one computation pass and prints it to stdout.
func printReport(engine *synthesis.Engine, clock util.Clock, opts options) error {
	clothing, err := models.ParseClothingLevel(opts.clothing)
	if err != nil {
		return err
	}

	now := clock.Now()
	report, err := engine.ComputeAt(now, opts.uvIndex, clothing, opts.adaptation)
	if err != nil {
		return err
	}

	fmt.Print(tui.RenderPlain(report, now))
	return nil
}
