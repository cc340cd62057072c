package storage

import (
	"fmt"
	"strings"

	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// WHERE clause construction, shared by both backends. The placeholder
// function abstracts the dialect difference ($n for Postgres, ? for SQLite).
// -----------------------------------------------------------------------------

type whereBuilder struct {
	conds []string
	args  []interface{}
	ph    func(n int) string // 1-based argument position
}

// -----------------------------------------------------------------------------

// add appends one condition; format must contain one %s per value.
func (b *whereBuilder) add(format string, values ...interface{}) {
	phs := make([]interface{}, len(values))
	for i, v := range values {
		b.args = append(b.args, v)
		phs[i] = b.ph(len(b.args))
	}
	b.conds = append(b.conds, fmt.Sprintf(format, phs...))
}

// -----------------------------------------------------------------------------

// addStatic appends a condition with no bound values.
func (b *whereBuilder) addStatic(cond string) {
	b.conds = append(b.conds, cond)
}

// -----------------------------------------------------------------------------

// clause renders "WHERE ..." or "" when nothing was added.
func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}

// -----------------------------------------------------------------------------

// buildContractWhere translates search filters into SQL conditions.
// Geography radius is deliberately absent: it is applied in memory by the
// query layer after the fetch.
func buildContractWhere(f models.MContractFilters, ph func(n int) string) *whereBuilder {
	b := &whereBuilder{ph: ph}

	if f.Keyword != "" {
		pattern := "%" + strings.ToLower(f.Keyword) + "%"
		b.add(`(
			lower(title) LIKE %s OR
			lower(description) LIKE %s OR
			lower(department_agency) LIKE %s OR
			lower(sub_tier) LIKE %s OR
			lower(office) LIKE %s
		)`, pattern, pattern, pattern, pattern, pattern)
	}
	if f.Type != "" {
		b.add("type = %s", f.Type)
	}
	if f.DepartmentAgency != "" {
		b.add("department_agency = %s", f.DepartmentAgency)
	}
	if f.SubTier != "" {
		b.add("sub_tier = %s", f.SubTier)
	}
	if f.SetAside != "" {
		b.add("set_aside = %s", f.SetAside)
	}
	if f.NaicsCode != "" {
		b.add("naics_code LIKE %s", f.NaicsCode+"%")
	}
	if f.State != "" {
		b.add("state = %s", f.State)
	}
	if f.City != "" {
		b.add("city = %s", f.City)
	}
	if f.PostedDateFrom != "" {
		b.add("posted_date >= %s", f.PostedDateFrom)
	}
	if f.PostedDateTo != "" {
		b.add("posted_date <= %s", f.PostedDateTo)
	}
	if f.ResponseDeadlineFrom != "" {
		b.add("response_deadline >= %s", f.ResponseDeadlineFrom)
	}
	if f.ResponseDeadlineTo != "" {
		b.add("response_deadline <= %s", f.ResponseDeadlineTo)
	}
	if f.HasAwardAmount {
		b.addStatic("award_amount IS NOT NULL AND award_amount > 0")
	}

	return b
}

// -----------------------------------------------------------------------------

// buildSpendWhere narrows rows feeding the in-memory spend aggregation.
// The base qualification (positive award, posted date present) lives here so
// the engine never sees rows it would only discard.
func buildSpendWhere(f models.MSpendFilters, ph func(n int) string) *whereBuilder {
	b := &whereBuilder{ph: ph}
	b.addStatic("award_amount IS NOT NULL AND award_amount > 0")
	b.addStatic("posted_date IS NOT NULL")

	if len(f.States) > 0 {
		phs := make([]interface{}, len(f.States))
		for i, s := range f.States {
			phs[i] = s
		}
		b.add("state IN ("+placeholderList(len(f.States))+")", phs...)
	}
	if len(f.Agencies) > 0 {
		phs := make([]interface{}, len(f.Agencies))
		for i, a := range f.Agencies {
			phs[i] = a
		}
		b.add("department_agency IN ("+placeholderList(len(f.Agencies))+")", phs...)
	}
	if len(f.NaicsPrefixes) > 0 {
		parts := make([]string, len(f.NaicsPrefixes))
		vals := make([]interface{}, len(f.NaicsPrefixes))
		for i, p := range f.NaicsPrefixes {
			parts[i] = "naics_code LIKE %s"
			vals[i] = p + "%"
		}
		b.add("("+strings.Join(parts, " OR ")+")", vals...)
	}

	return b
}

// -----------------------------------------------------------------------------

func placeholderList(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "%s"
	}
	return strings.Join(parts, ", ")
}

// -----------------------------------------------------------------------------
// Sorting. The sort column comes off the wire, so it is whitelisted rather
// than interpolated.
// -----------------------------------------------------------------------------

var sortColumns = map[string]bool{
	"posted_date":       true,
	"response_deadline": true,
	"award_amount":      true,
	"title":             true,
	"department_agency": true,
	"naics_code":        true,
	"state":             true,
	"city":              true,
}

// -----------------------------------------------------------------------------

func sortClause(f models.MContractFilters) string {
	column := f.SortBy
	if !sortColumns[column] {
		column = "posted_date"
	}
	order := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, order)
}
