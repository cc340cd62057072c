package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"contract-observer/src/logger"
	"contract-observer/src/models"

	_ "modernc.org/sqlite"
)

type SQLiteContractStore struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSQLiteContractStore(cfg *models.MConfig, log *logger.Logger) (*SQLiteContractStore, error) {
	return &SQLiteContractStore{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func sqlitePh(n int) string { return "?" }

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) Initialize() error {
	dsn := d.Config.Storage.DBPath

	// Open DB
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	// Recreate Tables
	return d.recreateTables()
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) recreateTables() error {
	// The CSV export is the source of truth; the table is rebuilt on start.
	if _, err := d.DB.Exec("DROP TABLE IF EXISTS contracts"); err != nil {
		return fmt.Errorf("failed to drop contracts: %w", err)
	}

	// SQLite types: INTEGER for int64, REAL for float64, TEXT for string.
	// Dates are TEXT in ISO form so range filters compare lexically.
	query := `
		CREATE TABLE contracts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			notice_id TEXT NOT NULL,
			title TEXT,
			sol_number TEXT,
			department_agency TEXT,
			sub_tier TEXT,
			office TEXT,
			posted_date TEXT,
			type TEXT,
			set_aside TEXT,
			set_aside_code TEXT,
			response_deadline TEXT,
			naics_code TEXT,
			award_amount REAL,
			award_date TEXT,
			awardee TEXT,
			state TEXT,
			city TEXT,
			zip_code TEXT,
			country_code TEXT,
			description TEXT,
			link TEXT
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create contracts: %w", err)
	}

	for _, idx := range []string{
		"CREATE INDEX idx_contracts_posted_date ON contracts(posted_date)",
		"CREATE INDEX idx_contracts_state ON contracts(state)",
		"CREATE INDEX idx_contracts_naics ON contracts(naics_code)",
		"CREATE INDEX idx_contracts_agency ON contracts(department_agency)",
		"CREATE INDEX idx_contracts_awardee ON contracts(awardee)",
	} {
		if _, err := d.DB.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) SaveContractsBulk(contracts []models.MContract) error {
	if len(contracts) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(`
		INSERT INTO contracts (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, contractInsertColumns))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range contracts {
		if _, err := stmt.Exec(insertArgs(c)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) CountContracts(filters models.MContractFilters) (int, error) {
	b := buildContractWhere(filters, sqlitePh)

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM contracts %s", b.clause())
	if err := d.DB.QueryRow(query, b.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return count, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) FetchContracts(filters models.MContractFilters, limit, offset int) ([]models.MContract, error) {
	b := buildContractWhere(filters, sqlitePh)

	query := fmt.Sprintf(`
		SELECT %s FROM contracts
		%s
		%s
		LIMIT ? OFFSET ?
	`, contractColumns, b.clause(), sortClause(filters))

	args := append(b.args, limit, offset)
	rows, err := d.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contracts: %w", err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) FetchSpendRecords(filters models.MSpendFilters) ([]models.MContract, error) {
	b := buildSpendWhere(filters, sqlitePh)

	query := fmt.Sprintf("SELECT %s FROM contracts %s", contractColumns, b.clause())
	rows, err := d.DB.Query(query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spend records: %w", err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) DistinctFilterValues() (*models.MFilterOptions, error) {
	opts := &models.MFilterOptions{}

	queries := []struct {
		dest *[]string
		sql  string
	}{
		{&opts.Types, "SELECT DISTINCT type FROM contracts WHERE type IS NOT NULL ORDER BY type"},
		{&opts.Agencies, "SELECT DISTINCT department_agency FROM contracts WHERE department_agency IS NOT NULL ORDER BY department_agency"},
		{&opts.SubTiers, "SELECT DISTINCT sub_tier FROM contracts WHERE sub_tier IS NOT NULL ORDER BY sub_tier"},
		{&opts.SetAsides, "SELECT DISTINCT set_aside FROM contracts WHERE set_aside IS NOT NULL ORDER BY set_aside"},
		{&opts.NaicsCodes, "SELECT DISTINCT naics_code FROM contracts WHERE naics_code IS NOT NULL ORDER BY naics_code"},
		{&opts.States, "SELECT DISTINCT state FROM contracts WHERE state IS NOT NULL ORDER BY state"},
		{&opts.Cities, "SELECT DISTINCT city FROM contracts WHERE city IS NOT NULL ORDER BY city LIMIT 100"},
	}

	for _, q := range queries {
		rows, err := d.DB.Query(q.sql)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch filter values: %w", err)
		}
		values, err := scanStrings(rows)
		rows.Close()
		if err != nil {
			return nil, err
		}
		*q.dest = values
	}

	return opts, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) ContractorAnalytics(search, dateFrom, dateTo string, page, limit int) (*models.MContractorReport, error) {
	b := &whereBuilder{ph: sqlitePh}
	b.addStatic("awardee IS NOT NULL")
	b.addStatic("award_amount IS NOT NULL AND award_amount > 0")
	if search != "" {
		b.add("lower(awardee) LIKE %s", "%"+strings.ToLower(search)+"%")
	}
	if dateFrom != "" {
		b.add("posted_date >= %s", dateFrom)
	}
	if dateTo != "" {
		b.add("posted_date <= %s", dateTo)
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 25
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT awardee, state, city,
			COUNT(*) AS award_count,
			SUM(award_amount) AS total_awards,
			AVG(award_amount) AS avg_award_size,
			MIN(posted_date) AS first_award,
			MAX(posted_date) AS last_award
		FROM contracts
		%s
		GROUP BY awardee, state, city
		ORDER BY total_awards DESC
		LIMIT ? OFFSET ?
	`, b.clause())

	args := append(b.args, limit, offset)
	rows, err := d.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contractor analytics: %w", err)
	}
	contractors, err := scanContractors(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	countQuery := fmt.Sprintf("SELECT COUNT(DISTINCT awardee) FROM contracts %s", b.clause())
	var total int
	if err := d.DB.QueryRow(countQuery, b.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count contractors: %w", err)
	}

	return &models.MContractorReport{
		Contractors: contractors,
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  (total + limit - 1) / limit,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *SQLiteContractStore) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
