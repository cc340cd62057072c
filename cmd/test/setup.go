package main

import (
	"contract-observer/src/interfaces"
	"contract-observer/src/logger"
	"contract-observer/src/models"
	"contract-observer/src/storage"
)

// -----------------------------------------------------------------------------

func setupStore(conf *models.MConfig, appLogger *logger.Logger) (interfaces.IContractStore, error) {
	store, err := storage.NewSQLiteContractStore(conf, appLogger)
	if err != nil {
		appLogger.Error("Failed to init store: %v", err)
		return nil, err
	}
	if err := store.Initialize(); err != nil {
		appLogger.Error("Failed to migrate store: %v", err)
		return nil, err
	}
	return store, nil
}

// -----------------------------------------------------------------------------

func amount(v float64) *float64 { return &v }

// fixtureContracts covers both coasts, three agencies and two NAICS sectors
// so every aggregation dimension produces more than one bucket.
func fixtureContracts() []models.MContract {
	return []models.MContract{
		{NoticeID: "s-1", Title: "Shipyard Maintenance", DepartmentAgency: "DEPT OF DEFENSE", SubTier: "DEPT OF THE NAVY", PostedDate: "2020-02-10", NaicsCode: "336611", AwardAmount: amount(2500000), Awardee: "NORFOLK MARINE", State: "VA", City: "Norfolk"},
		{NoticeID: "s-2", Title: "IT Modernization", DepartmentAgency: "GENERAL SERVICES ADMINISTRATION", SubTier: "FAS", PostedDate: "2020-05-04", NaicsCode: "541511", AwardAmount: amount(750000), Awardee: "CAPITOL SYSTEMS", State: "DC", City: "Washington"},
		{NoticeID: "s-3", Title: "Facility Security", DepartmentAgency: "DEPT OF DEFENSE", SubTier: "DEPT OF THE ARMY", PostedDate: "2021-01-15", NaicsCode: "561612", AwardAmount: amount(430000), Awardee: "SHIELD SERVICES", State: "MD", City: "Baltimore"},
		{NoticeID: "s-4", Title: "Cloud Migration", DepartmentAgency: "DEPT OF VETERANS AFFAIRS", SubTier: "VHA", PostedDate: "2021-06-30", NaicsCode: "541512", AwardAmount: amount(1200000), Awardee: "PACIFIC DIGITAL", State: "CA", City: "San Diego"},
		{NoticeID: "s-5", Title: "Runway Repair", DepartmentAgency: "DEPT OF DEFENSE", SubTier: "DEPT OF THE AIR FORCE", PostedDate: "2021-09-12", NaicsCode: "237310", AwardAmount: amount(5400000), Awardee: "WESTERN PAVING", State: "CA", City: "Sacramento"},
		{NoticeID: "s-6", Title: "Open Solicitation", DepartmentAgency: "GENERAL SERVICES ADMINISTRATION", SubTier: "PBS", PostedDate: "2022-03-01", NaicsCode: "541330", State: "NY", City: "New York"},
	}
}
