package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contract-observer/src/logger"
	"contract-observer/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresContractStore struct {
	Config *models.MConfig
	DB     *sql.DB
	Schema string
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPostgresContractStore(cfg *models.MConfig, log *logger.Logger) (*PostgresContractStore, error) {
	// Schema follows the executable name so parallel deployments on a shared
	// cluster don't collide.
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable name: %w", err)
	}
	name := filepath.Base(exe)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return &PostgresContractStore{
		Config: cfg,
		Schema: name,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func postgresPh(n int) string { return fmt.Sprintf("$%d", n) }

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) table() string {
	return fmt.Sprintf(`"%s"."contracts"`, d.Schema)
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) Initialize() error {
	dsn := d.Config.Storage.DBConnectionString
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// Create Schema
	if _, err := d.DB.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, d.Schema)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", d.Schema, err)
	}

	if err := d.recreateTables(); err != nil {
		return err
	}

	d.Logger.Info("PostgresContractStore initialized successfully (Schema: %s)", d.Schema)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) recreateTables() error {
	if _, err := d.DB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", d.table())); err != nil {
		return fmt.Errorf("failed to drop contracts: %w", err)
	}

	// Dates are TEXT in ISO form so range filters compare lexically, matching
	// the SQLite backend byte for byte.
	query := fmt.Sprintf(`
		CREATE TABLE %s (
			id BIGSERIAL PRIMARY KEY,
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
			award_amount DOUBLE PRECISION,
			award_date TEXT,
			awardee TEXT,
			state TEXT,
			city TEXT,
			zip_code TEXT,
			country_code TEXT,
			description TEXT,
			link TEXT
		);
	`, d.table())
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create contracts: %w", err)
	}

	for _, col := range []string{"posted_date", "state", "naics_code", "department_agency", "awardee"} {
		idx := fmt.Sprintf(`CREATE INDEX "idx_%s_contracts_%s" ON %s (%s)`, d.Schema, col, d.table(), col)
		if _, err := d.DB.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", col, err)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) SaveContractsBulk(contracts []models.MContract) error {
	if len(contracts) == 0 {
		return nil
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	phs := make([]string, contractInsertParams)
	for i := range phs {
		phs[i] = postgresPh(i + 1)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.table(), contractInsertColumns, strings.Join(phs, ", "),
	))
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

func (d *PostgresContractStore) CountContracts(filters models.MContractFilters) (int, error) {
	b := buildContractWhere(filters, postgresPh)

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", d.table(), b.clause())
	if err := d.DB.QueryRow(query, b.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return count, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) FetchContracts(filters models.MContractFilters, limit, offset int) ([]models.MContract, error) {
	b := buildContractWhere(filters, postgresPh)

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		%s
		%s
		LIMIT %s OFFSET %s
	`, contractColumns, d.table(), b.clause(), sortClause(filters),
		postgresPh(len(b.args)+1), postgresPh(len(b.args)+2))

	args := append(b.args, limit, offset)
	rows, err := d.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contracts: %w", err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) FetchSpendRecords(filters models.MSpendFilters) ([]models.MContract, error) {
	b := buildSpendWhere(filters, postgresPh)

	query := fmt.Sprintf("SELECT %s FROM %s %s", contractColumns, d.table(), b.clause())
	rows, err := d.DB.Query(query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spend records: %w", err)
	}
	defer rows.Close()

	return scanContracts(rows)
}

// -----------------------------------------------------------------------------

func (d *PostgresContractStore) DistinctFilterValues() (*models.MFilterOptions, error) {
	opts := &models.MFilterOptions{}

	queries := []struct {
		dest   *[]string
		column string
		limit  string
	}{
		{&opts.Types, "type", ""},
		{&opts.Agencies, "department_agency", ""},
		{&opts.SubTiers, "sub_tier", ""},
		{&opts.SetAsides, "set_aside", ""},
		{&opts.NaicsCodes, "naics_code", ""},
		{&opts.States, "state", ""},
		{&opts.Cities, "city", "LIMIT 100"},
	}

	for _, q := range queries {
		query := fmt.Sprintf(
			"SELECT DISTINCT %s FROM %s WHERE %s IS NOT NULL ORDER BY %s %s",
			q.column, d.table(), q.column, q.column, q.limit,
		)
		rows, err := d.DB.Query(query)
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

func (d *PostgresContractStore) ContractorAnalytics(search, dateFrom, dateTo string, page, limit int) (*models.MContractorReport, error) {
	b := &whereBuilder{ph: postgresPh}
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
		FROM %s
		%s
		GROUP BY awardee, state, city
		ORDER BY total_awards DESC
		LIMIT %s OFFSET %s
	`, d.table(), b.clause(), postgresPh(len(b.args)+1), postgresPh(len(b.args)+2))

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

	countQuery := fmt.Sprintf("SELECT COUNT(DISTINCT awardee) FROM %s %s", d.table(), b.clause())
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

func (d *PostgresContractStore) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
