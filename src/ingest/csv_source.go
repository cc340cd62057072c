package ingest

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"contract-observer/src/helpers"
	"contract-observer/src/interfaces"
	"contract-observer/src/logger"
	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// CSVContractSource
// -----------------------------------------------------------------------------

// CSVContractSource loads a SAM.gov-style opportunity export, either from a
// local file or over HTTP. Rows missing a notice id or a title are skipped
// and counted rather than failing the whole load.
type CSVContractSource struct {
	Config  *models.MConfig
	Logger  *logger.Logger
	Network interfaces.INetworkManager
}

// -----------------------------------------------------------------------------

func NewCSVContractSource(cfg *models.MConfig, log *logger.Logger, nm interfaces.INetworkManager) *CSVContractSource {
	return &CSVContractSource{
		Config:  cfg,
		Logger:  log,
		Network: nm,
	}
}

// -----------------------------------------------------------------------------

func (s *CSVContractSource) Name() string {
	return "sam-csv"
}

// -----------------------------------------------------------------------------

func (s *CSVContractSource) Load() ([]models.MContract, int, error) {
	source := s.Config.Ingest.Source

	var raw []byte
	var err error
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		s.Logger.Info("Downloading contract export from %s", source)
		raw, err = s.Network.Get(source, nil)
	} else {
		if info, statErr := os.Stat(source); statErr == nil && !helpers.ExportFitsInMemory(info.Size()) {
			s.Logger.Warning("Export %s is large (%d MB); parsing may exhaust memory", source, info.Size()/(1024*1024))
		}
		s.Logger.Info("Reading contract export from %s", source)
		raw, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, 0, helpers.NewIngestError("failed to read source '"+source+"'", err)
	}

	return s.parse(raw)
}

// -----------------------------------------------------------------------------

func (s *CSVContractSource) parse(raw []byte) ([]models.MContract, int, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, helpers.NewIngestError("failed to read CSV header", err)
	}

	// Column positions by export header name; exports occasionally reorder.
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx["NoticeId"]; !ok {
		return nil, 0, helpers.NewIngestError("CSV is missing the NoticeId column", nil)
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return cleanValue(row[i])
	}

	var contracts []models.MContract
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		c := models.MContract{
			NoticeID:         field(row, "NoticeId"),
			Title:            field(row, "Title"),
			SolNumber:        field(row, "Sol#"),
			DepartmentAgency: field(row, "Department/Ind.Agency"),
			SubTier:          field(row, "Sub-Tier"),
			Office:           field(row, "Office"),
			PostedDate:       parseDate(field(row, "PostedDate")),
			Type:             field(row, "Type"),
			SetAside:         field(row, "SetASide"),
			SetAsideCode:     field(row, "SetASideCode"),
			ResponseDeadline: parseDate(field(row, "ResponseDeadLine")),
			NaicsCode:        cleanNaics(field(row, "NaicsCode")),
			AwardAmount:      parseAmount(field(row, "Award$")),
			AwardDate:        parseDate(field(row, "AwardDate")),
			Awardee:          field(row, "Awardee"),
			State:            strings.ToUpper(field(row, "State")),
			City:             field(row, "City"),
			ZipCode:          field(row, "ZipCode"),
			CountryCode:      field(row, "CountryCode"),
			Description:      field(row, "Description"),
			Link:             field(row, "Link"),
		}

		// A row without an id or title is unusable in every view.
		if c.NoticeID == "" || c.Title == "" {
			skipped++
			continue
		}

		contracts = append(contracts, c)
	}

	s.Logger.Info("Parsed %d contracts (%d rows skipped)", len(contracts), skipped)
	return contracts, skipped, nil
}

// -----------------------------------------------------------------------------
// Field Cleaning
// -----------------------------------------------------------------------------

// cleanValue trims a raw cell and maps the export's null spellings to "".
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToUpper(v) {
	case "NULL", "NONE", "N/A", "NA":
		return ""
	}
	return v
}

// -----------------------------------------------------------------------------

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
}

// parseDate normalizes the export's date spellings to ISO, or "" when the
// value does not parse. Timestamps are truncated to the date.
func parseDate(v string) string {
	if v == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// -----------------------------------------------------------------------------

// parseAmount reads a currency cell ("$1,234.56") as a float, nil when absent
// or unparseable.
func parseAmount(v string) *float64 {
	if v == "" {
		return nil
	}
	v = strings.ReplaceAll(v, "$", "")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(v)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// -----------------------------------------------------------------------------

// cleanNaics strips the float artifact some exports carry ("541511.0").
func cleanNaics(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}
