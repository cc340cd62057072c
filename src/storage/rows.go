package storage

import (
	"database/sql"

	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// Row mapping shared by both backends. The column list must stay in sync with
// the CREATE TABLE statements and the bulk insert.
// -----------------------------------------------------------------------------

const contractColumns = `id, notice_id, title, sol_number, department_agency, sub_tier, office,
	posted_date, type, set_aside, set_aside_code, response_deadline, naics_code,
	award_amount, award_date, awardee, state, city, zip_code, country_code, description, link`

const contractInsertColumns = `notice_id, title, sol_number, department_agency, sub_tier, office,
	posted_date, type, set_aside, set_aside_code, response_deadline, naics_code,
	award_amount, award_date, awardee, state, city, zip_code, country_code, description, link`

const contractInsertParams = 21

// -----------------------------------------------------------------------------

func scanContracts(rows *sql.Rows) ([]models.MContract, error) {
	var out []models.MContract

	for rows.Next() {
		var c models.MContract
		var (
			solNumber, agency, subTier, office       sql.NullString
			postedDate, cType, setAside, setAsideCd  sql.NullString
			deadline, naics, awardDate, awardee      sql.NullString
			state, city, zip, country, descr, link   sql.NullString
			award                                    sql.NullFloat64
		)

		err := rows.Scan(&c.ID, &c.NoticeID, &c.Title, &solNumber, &agency, &subTier, &office,
			&postedDate, &cType, &setAside, &setAsideCd, &deadline, &naics,
			&award, &awardDate, &awardee, &state, &city, &zip, &country, &descr, &link)
		if err != nil {
			return nil, err
		}

		c.SolNumber = solNumber.String
		c.DepartmentAgency = agency.String
		c.SubTier = subTier.String
		c.Office = office.String
		c.PostedDate = postedDate.String
		c.Type = cType.String
		c.SetAside = setAside.String
		c.SetAsideCode = setAsideCd.String
		c.ResponseDeadline = deadline.String
		c.NaicsCode = naics.String
		if award.Valid {
			v := award.Float64
			c.AwardAmount = &v
		}
		c.AwardDate = awardDate.String
		c.Awardee = awardee.String
		c.State = state.String
		c.City = city.String
		c.ZipCode = zip.String
		c.CountryCode = country.String
		c.Description = descr.String
		c.Link = link.String

		out = append(out, c)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------

// insertArgs renders one contract as the bulk-insert argument list, mapping
// empty strings and nil amounts to SQL NULL.
func insertArgs(c models.MContract) []interface{} {
	return []interface{}{
		c.NoticeID, c.Title, strOrNull(c.SolNumber), strOrNull(c.DepartmentAgency),
		strOrNull(c.SubTier), strOrNull(c.Office), strOrNull(c.PostedDate),
		strOrNull(c.Type), strOrNull(c.SetAside), strOrNull(c.SetAsideCode),
		strOrNull(c.ResponseDeadline), strOrNull(c.NaicsCode), floatOrNull(c.AwardAmount),
		strOrNull(c.AwardDate), strOrNull(c.Awardee), strOrNull(c.State),
		strOrNull(c.City), strOrNull(c.ZipCode), strOrNull(c.CountryCode),
		strOrNull(c.Description), strOrNull(c.Link),
	}
}

// -----------------------------------------------------------------------------

func strOrNull(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func floatOrNull(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

// -----------------------------------------------------------------------------

func scanContractors(rows *sql.Rows) ([]models.MContractorSummary, error) {
	var out []models.MContractorSummary

	for rows.Next() {
		var s models.MContractorSummary
		var state, city, first, last sql.NullString

		err := rows.Scan(&s.Awardee, &state, &city, &s.AwardCount, &s.TotalAwards, &s.AvgAwardSize, &first, &last)
		if err != nil {
			return nil, err
		}

		s.State = state.String
		s.City = city.String
		s.FirstAward = first.String
		s.LastAward = last.String
		out = append(out, s)
	}
	return out, rows.Err()
}

// -----------------------------------------------------------------------------

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
