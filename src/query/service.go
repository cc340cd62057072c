package query

import (
	"context"

	"contract-observer/src/geo"
	"contract-observer/src/interfaces"
	"contract-observer/src/logger"
	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// SearchService
// -----------------------------------------------------------------------------

const (
	defaultPageLimit         = 25
	defaultOversampleFactor  = 10
	maxPageLimit             = 200
)

// SearchService answers contract searches against the record store. Radius
// constraints cannot be pushed into SQL because locations resolve through the
// in-memory coordinate tables, so radius searches over-fetch in batches of
// limit x oversample, filter, and advance the offset until the page is full
// or the store runs dry. A naive single-pass filter would silently
// under-fill pages.
type SearchService struct {
	Store      interfaces.IContractStore
	Resolver   *geo.Resolver
	Logger     *logger.Logger
	Oversample int
}

// -----------------------------------------------------------------------------

func NewSearchService(store interfaces.IContractStore, resolver *geo.Resolver, log *logger.Logger, oversample int) *SearchService {
	if oversample <= 0 {
		oversample = defaultOversampleFactor
	}
	return &SearchService{
		Store:      store,
		Resolver:   resolver,
		Logger:     log,
		Oversample: oversample,
	}
}

// -----------------------------------------------------------------------------

// Search returns one page of contracts. With a radius the fetch loop honors
// ctx between batches, so a caller imposing a deadline simply stops issuing
// batches and gets the context error back.
func (s *SearchService) Search(ctx context.Context, filters models.MContractFilters, page, limit int, radius *models.MRadiusQuery) (*models.MSearchResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.Store.CountContracts(filters)
	if err != nil {
		return nil, err
	}

	result := &models.MSearchResult{
		Contracts:  []models.MContract{},
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}

	offset := (page - 1) * limit

	if radius == nil {
		rows, err := s.Store.FetchContracts(filters, limit, offset)
		if err != nil {
			return nil, err
		}
		result.Contracts = append(result.Contracts, rows...)
		return result, nil
	}

	matches, exhausted, err := s.radiusSearch(ctx, filters, *radius, limit, offset)
	if err != nil {
		return nil, err
	}
	result.Contracts = matches
	result.Exhausted = exhausted
	return result, nil
}

// -----------------------------------------------------------------------------

// radiusSearch runs the over-fetch loop. It terminates when enough matches
// are collected or the store reports exhaustion (a short batch). The returned
// flag is true only when the store ran out before the page filled, so callers
// can tell a legitimately short page from one cut off mid-search.
func (s *SearchService) radiusSearch(ctx context.Context, filters models.MContractFilters, radius models.MRadiusQuery, limit, offset int) ([]models.MContract, bool, error) {
	batch := limit * s.Oversample
	fetchOffset := offset
	matches := make([]models.MContract, 0, limit)

	for {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		rows, err := s.Store.FetchContracts(filters, batch, fetchOffset)
		if err != nil {
			return nil, false, err
		}

		for _, c := range rows {
			if s.Resolver.WithinRadius(c.City, c.State, radius) {
				matches = append(matches, c)
			}
		}

		if len(rows) < batch {
			// Store exhausted; whatever we have is everything.
			short := len(matches) < limit
			if len(matches) > limit {
				matches = matches[:limit]
			}
			return matches, short, nil
		}
		if len(matches) >= limit {
			return matches[:limit], false, nil
		}

		fetchOffset += batch
	}
}
