package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/config"
	"github.com/cyclehub/inventoryman/internal/repository/mongodb"
	"github.com/cyclehub/inventoryman/internal/repository/sheets"
	"github.com/cyclehub/inventoryman/internal/scheduler"
	"github.com/cyclehub/inventoryman/internal/server/handlers"
	"github.com/cyclehub/inventoryman/internal/server/router"
	authsvc "github.com/cyclehub/inventoryman/internal/service/auth"
	barcodesvc "github.com/cyclehub/inventoryman/internal/service/barcode"
	catalogsvc "github.com/cyclehub/inventoryman/internal/service/catalog"
	ordersvc "github.com/cyclehub/inventoryman/internal/service/orders"
	reportingsvc "github.com/cyclehub/inventoryman/internal/service/reporting"
	stocksvc "github.com/cyclehub/inventoryman/internal/service/stocks"
	"github.com/cyclehub/inventoryman/pkg/clients/bwip"
	"github.com/cyclehub/inventoryman/pkg/clients/mailersend"
	"github.com/cyclehub/inventoryman/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to ensure mongodb indexes", zap.Error(err))
	}

	// Outbound mail is optional; without credentials invoices simply cannot
	// be mailed.
	var mailer mailersend.Client
	if cfg.MailEnabled() {
		mailer = mailersend.NewClient(cfg.Mail)
		baseLogger.Info("mailersend client enabled")
	} else {
		baseLogger.Warn("mailersend api key missing, invoice mail disabled")
	}

	barcodeClient := bwip.NewClient(cfg.Barcode)

	authService := authsvc.NewService(repo, cfg.Auth.SessionSecret, baseLogger.Named("svc.auth"))
	stockService := stocksvc.NewService(repo, baseLogger.Named("svc.stocks"))
	catalogService := catalogsvc.NewService(repo, baseLogger.Named("svc.catalog"))
	orderService := ordersvc.NewService(repo, repo, mailer, baseLogger.Named("svc.orders"))
	reportingService := reportingsvc.NewService(repo, repo, repo, baseLogger.Named("svc.reporting"))
	barcodeService := barcodesvc.NewService(barcodeClient, baseLogger.Named("svc.barcode"))

	engine := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth")),
		Stock:   handlers.NewStockHandler(stockService, catalogService, baseLogger.Named("handlers.stocks")),
		Order:   handlers.NewOrderHandler(orderService, reportingService, baseLogger.Named("handlers.orders")),
		Catalog: handlers.NewCatalogHandler(catalogService, baseLogger.Named("handlers.catalog")),
		Report:  handlers.NewReportHandler(reportingService, baseLogger.Named("handlers.reports")),
		Barcode: handlers.NewBarcodeHandler(barcodeService, stockService, baseLogger.Named("handlers.barcodes")),
	}, authService, baseLogger.Named("router"))

	// The bookkeeping export only runs when the spreadsheet is configured.
	if cfg.SheetsExportEnabled() {
		exporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}

		sched := scheduler.NewScheduler(cfg.Export, reportingService, exporter, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	} else {
		baseLogger.Warn("sheets export not configured, daily sales export disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
