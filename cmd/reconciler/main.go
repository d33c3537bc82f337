package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"sales-reconciliation/internal/config"
	"sales-reconciliation/internal/domain"
	"sales-reconciliation/internal/gateway"
	"sales-reconciliation/internal/usecase"
)

// reportWriter is satisfied by both gateway report writers.
type reportWriter interface {
	Write(report *domain.Report, path string) error
}

func main() {
	os.Exit(run())
}

func run() int {
	// Command-line flags override environment configuration.
	inputFlag := flag.String("input", "", "Path to the sales ledger CSV file")
	outputFlag := flag.String("output", "", "Path for the reconciliation report")
	formatFlag := flag.String("format", "", "Report format: csv or json")
	portalURLFlag := flag.String("portal-url", "", "Base URL of the payment portal API")
	portalModeFlag := flag.String("portal-mode", "", "Portal lookup mode: http or fixture")
	flag.Parse()

	runID := uuid.NewString()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("run_id", runID)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return 1
	}
	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	}
	if *outputFlag != "" {
		cfg.OutputPath = *outputFlag
	}
	if *formatFlag != "" {
		cfg.ReportFormat = *formatFlag
	}
	if *portalURLFlag != "" {
		cfg.PortalURL = *portalURLFlag
	}
	if *portalModeFlag != "" {
		cfg.PortalMode = *portalModeFlag
	}

	ctx := context.Background()
	logger.Info("starting reconciliation", "input", cfg.InputPath, "portal_mode", cfg.PortalMode)

	// --- Dependency wiring ---

	// 1. Sale source: reads and fully validates the ledger before any
	//    portal lookup happens. Validation failures are fatal.
	source := gateway.NewCSVSaleSource()
	sales, err := source.Sales(ctx, cfg.InputPath)
	if err != nil {
		logger.Error("sales ledger validation failed", "error", err)
		return 1
	}
	logger.Info("sales ledger loaded", "records", len(sales))

	// 2. Portal lookup collaborator. The session is owned by this run and
	//    released on every exit path.
	var portal usecase.PortalLookup
	switch cfg.PortalMode {
	case "fixture":
		fixture := gateway.NewFixturePortal(
			rand.New(rand.NewSource(cfg.FixtureSeed)), cfg.FixtureDivergenceRate)
		fixture.Seed(sales)
		portal = fixture
	case "http":
		portal = gateway.NewPortalClient(
			cfg.PortalURL, time.Duration(cfg.LookupTimeoutSeconds)*time.Second, logger)
	default:
		logger.Error("unknown portal mode", "portal_mode", cfg.PortalMode)
		return 1
	}
	defer func() {
		if err := portal.Close(); err != nil {
			logger.Warn("failed to close portal session", "error", err)
		}
	}()

	// 3. Orchestrator.
	reconciler := usecase.NewReconciler(portal, logger)
	report := reconciler.Reconcile(ctx, runID, sales)

	logger.Info("reconciliation finished",
		"rows", len(report.Items),
		"skipped", report.Skipped,
		"abandoned", report.Abandoned)

	// The report is written whenever any rows exist, even after a portal
	// outage aborted the batch partway through. A zero-row run is not an
	// error; the orchestrator already logged the warning.
	if len(report.Items) == 0 {
		return 0
	}

	var writer reportWriter
	switch cfg.ReportFormat {
	case "json":
		writer = gateway.NewJSONReportWriter()
	case "csv":
		writer = gateway.NewCSVReportWriter()
	default:
		logger.Error("unknown report format", "format", cfg.ReportFormat)
		return 1
	}

	if dir := filepath.Dir(cfg.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("failed to create output directory", "dir", dir, "error", err)
			return 1
		}
	}
	if err := writer.Write(report, cfg.OutputPath); err != nil {
		logger.Error("failed to write report", "error", err)
		return 1
	}

	logger.Info("report written", "output", cfg.OutputPath)
	return 0
}
