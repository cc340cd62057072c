package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"contract-observer/src/analysis"
	"contract-observer/src/config"
	"contract-observer/src/geo"
	"contract-observer/src/logger"
	"contract-observer/src/models"
	"contract-observer/src/query"
)

// Smoke harness: seeds a throwaway SQLite store with a small fixture set and
// exercises the search and analytics paths end to end without the HTTP layer.
func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "../../config/default.yaml", "path to config file")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Throwaway database, never the configured one
	conf.Storage.DBType = "sqlite"
	conf.Storage.DBPath = "smoke_test.db"
	defer os.Remove("smoke_test.db")

	// 3. Setup Logger
	appLogger := logger.NewLogger(conf, "smoke-test")

	// 4. Setup Components
	store, err := setupStore(conf.MConfig, appLogger)
	if err != nil {
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveContractsBulk(fixtureContracts()); err != nil {
		appLogger.Critical("Failed to seed store: %v", err)
	}

	analyzer := analysis.NewSpendAnalyzer(conf.MConfig, appLogger)
	searcher := query.NewSearchService(store, geo.DefaultResolver(), appLogger, conf.Analytics.OversampleFactor)

	ctx := context.Background()

	// 5. Plain search
	result, err := searcher.Search(ctx, models.MContractFilters{State: "VA"}, 1, 10, nil)
	if err != nil {
		appLogger.Critical("Search failed: %v", err)
	}
	appLogger.Info("State search: %d of %d contracts", len(result.Contracts), result.Total)

	// 6. Radius search around Washington DC
	radius := &models.MRadiusQuery{
		Center:      models.MGeoPoint{Latitude: 38.9072, Longitude: -77.0369},
		RadiusMiles: 250,
	}
	result, err = searcher.Search(ctx, models.MContractFilters{}, 1, 10, radius)
	if err != nil {
		appLogger.Critical("Radius search failed: %v", err)
	}
	appLogger.Info("Radius search: %d contracts (exhausted=%v)", len(result.Contracts), result.Exhausted)

	// 7. Spend aggregation per dimension
	records, err := store.FetchSpendRecords(models.MSpendFilters{})
	if err != nil {
		appLogger.Critical("Spend fetch failed: %v", err)
	}
	for _, key := range []analysis.AggregationKey{analysis.KeyGeography, analysis.KeyAgency, analysis.KeyNaics} {
		report, err := analyzer.Aggregate(records, key, 5)
		if err != nil {
			appLogger.Critical("Aggregation %s failed: %v", key, err)
		}
		appLogger.Info("Spend by %s: %d entities (limited=%v)", key, len(report.Data), report.IsLimited)
		for _, e := range report.Data {
			appLogger.Info("  %-30s total=%.2f contracts=%d", e.Name, e.Total, e.ContractCount)
		}
	}

	// 8. Contractor rollup
	contractors, err := store.ContractorAnalytics("", "", "", 1, 5)
	if err != nil {
		appLogger.Critical("Contractor analytics failed: %v", err)
	}
	appLogger.Info("Contractors: %d distinct", contractors.TotalCount)

	appLogger.Info("Smoke test complete.")
}
