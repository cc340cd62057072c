package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contract-observer/src/analysis"
	"contract-observer/src/config"
	"contract-observer/src/geo"
	"contract-observer/src/ingest"
	"contract-observer/src/interfaces"
	"contract-observer/src/logger"
	"contract-observer/src/models"
	"contract-observer/src/network"
	"contract-observer/src/query"
	"contract-observer/src/server"
	"contract-observer/src/storage"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	config, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(config, config.Name)

	// 2. Setup Storage
	var store interfaces.IContractStore

	switch config.Storage.DBType {
	case "postgres":
		store, err = storage.NewPostgresContractStore(config.MConfig, appLogger)
	default:
		// Default to SQLite
		store, err = storage.NewSQLiteContractStore(config.MConfig, appLogger)
	}

	if err != nil {
		appLogger.Critical("Failed to init store: %v", err)
	}
	if err := store.Initialize(); err != nil {
		appLogger.Critical("Failed to migrate store: %v", err)
	}
	defer store.Close()

	// 3. Setup Components
	var networkManager interfaces.INetworkManager = network.NewAsyncNetworkManager(config.MConfig, appLogger)
	var source interfaces.IContractSource = ingest.NewCSVContractSource(config.MConfig, appLogger, networkManager)

	analyzer := analysis.NewSpendAnalyzer(config.MConfig, appLogger)
	searcher := query.NewSearchService(store, geo.DefaultResolver(), appLogger, config.Analytics.OversampleFactor)

	var srv interfaces.IDataExchanger = server.NewAPIServer(config.MConfig, appLogger, store, searcher, analyzer)

	// 4. Initial Data Load
	appLogger.Info("Loading contract export...")
	contracts, skipped, err := source.Load()
	if err != nil {
		appLogger.Critical("Initial load failed: %v", err)
	}

	// Insert in batches to keep transactions bounded
	batch := config.Ingest.BatchSize
	for start := 0; start < len(contracts); start += batch {
		end := start + batch
		if end > len(contracts) {
			end = len(contracts)
		}
		if err := store.SaveContractsBulk(contracts[start:end]); err != nil {
			appLogger.Critical("Failed to save contracts [%d:%d]: %v", start, end, err)
		}
	}
	appLogger.Info("Loaded %d contracts (%d rows skipped)", len(contracts), skipped)

	// 5. Seed the dashboard state with a top-spend snapshot
	notice := &models.MRefreshNotice{
		LoadedRecords: len(contracts),
		SkippedRows:   skipped,
		Timestamp:     time.Now().Unix(),
	}

	if records, err := store.FetchSpendRecords(models.MSpendFilters{}); err != nil {
		appLogger.Warning("Spend snapshot query failed: %v", err)
	} else if report, err := analyzer.Aggregate(records, analysis.KeyGeography, 10); err != nil {
		appLogger.Warning("Spend snapshot aggregation failed: %v", err)
	} else {
		notice.TopSpend = report.Data
	}

	srv.UpdateState(notice)

	// 6. Start Server
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	appLogger.Info("Initialization complete.")

	// 7. Wait for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...")
	srv.Stop()
}
