package storage

import (
	"testing"

	"contract-observer/src/models"

	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------

func TestWhereBuilderEmpty(t *testing.T) {
	b := &whereBuilder{ph: sqlitePh}
	assert.Equal(t, "", b.clause())
	assert.Empty(t, b.args)
}

// -----------------------------------------------------------------------------

func TestWhereBuilderPlaceholderNumbering(t *testing.T) {
	b := &whereBuilder{ph: postgresPh}
	b.add("state = %s", "VA")
	b.add("posted_date >= %s", "2023-01-01")
	b.add("posted_date <= %s", "2023-12-31")

	assert.Equal(t, "WHERE state = $1 AND posted_date >= $2 AND posted_date <= $3", b.clause())
	assert.Equal(t, []interface{}{"VA", "2023-01-01", "2023-12-31"}, b.args)
}

// -----------------------------------------------------------------------------

func TestBuildContractWhereKeyword(t *testing.T) {
	b := buildContractWhere(models.MContractFilters{Keyword: "Radar"}, sqlitePh)

	clause := b.clause()
	assert.Contains(t, clause, "lower(title) LIKE ?")
	assert.Contains(t, clause, "lower(description) LIKE ?")
	assert.Contains(t, clause, "lower(office) LIKE ?")

	// One bound pattern per searched column, already lowercased.
	assert.Len(t, b.args, 5)
	for _, a := range b.args {
		assert.Equal(t, "%radar%", a)
	}
}

// -----------------------------------------------------------------------------

func TestBuildContractWhereNaicsPrefix(t *testing.T) {
	b := buildContractWhere(models.MContractFilters{NaicsCode: "5415"}, sqlitePh)

	assert.Equal(t, "WHERE naics_code LIKE ?", b.clause())
	assert.Equal(t, []interface{}{"5415%"}, b.args)
}

// -----------------------------------------------------------------------------

func TestBuildContractWhereHasAwardAmount(t *testing.T) {
	b := buildContractWhere(models.MContractFilters{HasAwardAmount: true}, sqlitePh)

	assert.Equal(t, "WHERE award_amount IS NOT NULL AND award_amount > 0", b.clause())
	assert.Empty(t, b.args)
}

// -----------------------------------------------------------------------------

func TestBuildContractWhereCombined(t *testing.T) {
	f := models.MContractFilters{
		State:          "CA",
		City:           "San Diego",
		PostedDateFrom: "2024-01-01",
	}
	b := buildContractWhere(f, postgresPh)

	assert.Equal(t, "WHERE state = $1 AND city = $2 AND posted_date >= $3", b.clause())
	assert.Equal(t, []interface{}{"CA", "San Diego", "2024-01-01"}, b.args)
}

// -----------------------------------------------------------------------------

func TestBuildSpendWhereBaseQualification(t *testing.T) {
	b := buildSpendWhere(models.MSpendFilters{}, sqlitePh)

	assert.Equal(t, "WHERE award_amount IS NOT NULL AND award_amount > 0 AND posted_date IS NOT NULL", b.clause())
	assert.Empty(t, b.args)
}

// -----------------------------------------------------------------------------

func TestBuildSpendWhereLists(t *testing.T) {
	f := models.MSpendFilters{
		States:        []string{"VA", "MD"},
		NaicsPrefixes: []string{"54", "336"},
	}
	b := buildSpendWhere(f, postgresPh)

	clause := b.clause()
	assert.Contains(t, clause, "state IN ($1, $2)")
	assert.Contains(t, clause, "(naics_code LIKE $3 OR naics_code LIKE $4)")
	assert.Equal(t, []interface{}{"VA", "MD", "54%", "336%"}, b.args)
}

// -----------------------------------------------------------------------------

func TestSortClauseWhitelist(t *testing.T) {
	tests := []struct {
		name     string
		filters  models.MContractFilters
		expected string
	}{
		{"default", models.MContractFilters{}, "ORDER BY posted_date DESC"},
		{"valid column asc", models.MContractFilters{SortBy: "award_amount", SortOrder: "asc"}, "ORDER BY award_amount ASC"},
		{"valid column implicit desc", models.MContractFilters{SortBy: "title"}, "ORDER BY title DESC"},
		{"injection attempt falls back", models.MContractFilters{SortBy: "title; DROP TABLE contracts"}, "ORDER BY posted_date DESC"},
		{"unknown column falls back", models.MContractFilters{SortBy: "awardee"}, "ORDER BY posted_date DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sortClause(tt.filters))
		})
	}
}

// -----------------------------------------------------------------------------

func TestInsertArgsNullMapping(t *testing.T) {
	amount := 1500.0
	c := models.MContract{
		NoticeID:    "n-1",
		Title:       "Test",
		AwardAmount: &amount,
	}

	args := insertArgs(c)
	assert.Len(t, args, contractInsertParams)
	assert.Equal(t, "n-1", args[0])
	assert.Nil(t, args[2])            // sol_number empty -> NULL
	assert.Equal(t, 1500.0, args[12]) // award_amount present

	c.AwardAmount = nil
	args = insertArgs(c)
	assert.Nil(t, args[12])
}
