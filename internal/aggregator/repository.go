// Package aggregator reads the canonical equity store maintained by the
// upstream aggregation service. This process never writes to it; the
// pool is opened read-only and refresh cycles are plain SELECTs.
package aggregator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jwyoon/equityboard/internal/equity"
)

// equityColumns is the full column list in struct scan order
const equityColumns = `
	snapshot_date::text,
	name, symbol, share_class_figi, isin, cusip, cik, lei,
	mics, currency,
	last_price, market_cap, week52_min, week52_max, dividend_yield, market_volume,
	held_insiders, held_institutions, short_interest, share_float, shares_outstanding,
	revenue_per_share,
	profit_margin, gross_margin, operating_margin,
	free_cash_flow, operating_cash_flow,
	return_on_equity, return_on_assets, performance_1y,
	total_debt, revenue, ebitda,
	trailing_pe, price_to_book, trailing_eps,
	analyst_rating, industry, sector`

// Repository reads canonical equities from the aggregation store
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new aggregation store reader
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListLatest retrieves every equity from the most recent snapshot
func (r *Repository) ListLatest(ctx context.Context) ([]equity.CanonicalEquity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM aggregator.canonical_equities
		WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM aggregator.canonical_equities)
		ORDER BY symbol NULLS LAST, share_class_figi
	`, equityColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}
	defer rows.Close()

	return scanEquities(rows)
}

// HistoryByFIGI retrieves every snapshot of one equity, oldest first
func (r *Repository) HistoryByFIGI(ctx context.Context, figi string) ([]equity.CanonicalEquity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM aggregator.canonical_equities
		WHERE share_class_figi = $1
		ORDER BY snapshot_date ASC
	`, equityColumns)

	rows, err := r.pool.Query(ctx, query, figi)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", figi, err)
	}
	defer rows.Close()

	return scanEquities(rows)
}

// SnapshotDates retrieves the distinct snapshot dates, newest first
func (r *Repository) SnapshotDates(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT snapshot_date::text
		FROM aggregator.canonical_equities
		ORDER BY snapshot_date::text DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func scanEquities(rows pgx.Rows) ([]equity.CanonicalEquity, error) {
	var equities []equity.CanonicalEquity
	for rows.Next() {
		var e equity.CanonicalEquity
		f := &e.Financials
		err := rows.Scan(
			&e.SnapshotDate,
			&e.Identity.Name, &e.Identity.Symbol, &e.Identity.ShareClassFIGI,
			&e.Identity.ISIN, &e.Identity.CUSIP, &e.Identity.CIK, &e.Identity.LEI,
			&f.MICs, &f.Currency,
			&f.LastPrice, &f.MarketCap, &f.FiftyTwoWeekMin, &f.FiftyTwoWeekMax,
			&f.DividendYield, &f.MarketVolume,
			&f.HeldInsiders, &f.HeldInstitutions, &f.ShortInterest,
			&f.ShareFloat, &f.SharesOutstanding,
			&f.RevenuePerShare,
			&f.ProfitMargin, &f.GrossMargin, &f.OperatingMargin,
			&f.FreeCashFlow, &f.OperatingCashFlow,
			&f.ReturnOnEquity, &f.ReturnOnAssets, &f.Performance1Year,
			&f.TotalDebt, &f.Revenue, &f.EBITDA,
			&f.TrailingPE, &f.PriceToBook, &f.TrailingEPS,
			&f.AnalystRating, &f.Industry, &f.Sector,
		)
		if err != nil {
			return nil, err
		}
		equities = append(equities, e)
	}
	return equities, rows.Err()
}
