package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/metrics"
	"github.com/angelmondragon/salesdash-backend/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type reportStore interface {
	StoreSales(ctx context.Context, p Params) ([]StoreSalesRow, bool, error)
	ItemSales(ctx context.Context, p Params) ([]ItemSalesRow, bool, error)
	ItemSalesByHour(ctx context.Context, p Params) ([]ItemHourRow, bool, error)
	TransactionItems(ctx context.Context, p Params) ([]TransactionLineRow, bool, error)
	VoidTransactions(ctx context.Context, p Params) ([]VoidRow, bool, error)
	CategorySales(ctx context.Context, p Params) ([]CategorySalesRow, bool, error)
	StoreListing(ctx context.Context, p Params) ([]StoreSalesRow, bool, error)
	DayTotals(ctx context.Context, date Date, storeID *int64) (DayTotals, error)
}

// Service answers report requests.
type Service interface {
	Run(ctx context.Context, kind enums.ReportKind, raw RawParams) (*Result, error)
}

// Result is a shaped report ready for the response envelope. Truncated is set
// when the window was clamped or the rows hit the kind's ceiling.
type Result struct {
	Kind      enums.ReportKind
	Data      any
	Count     *int
	Truncated bool
	Start     Date
	End       Date
	Page      *pagination.Page
}

// ServiceOptions carries the optional collaborators of the service.
type ServiceOptions struct {
	Metrics  *metrics.ReportMetrics
	Logger   *logger.Logger
	Location *time.Location
	Clock    Clock
}

type service struct {
	repo    reportStore
	cache   SummaryCache
	metrics *metrics.ReportMetrics
	logg    *logger.Logger
	loc     *time.Location
	now     Clock
}

// NewService builds the report service over repo with cache in front of the
// sales summary.
func NewService(repo reportStore, cache SummaryCache, opts ServiceOptions) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository required")
	}
	if cache == nil {
		return nil, fmt.Errorf("summary cache required")
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:    repo,
		cache:   cache,
		metrics: opts.Metrics,
		logg:    opts.Logger,
		loc:     loc,
		now:     clock,
	}, nil
}

func (s *service) Run(ctx context.Context, kind enums.ReportKind, raw RawParams) (*Result, error) {
	policy, err := PolicyFor(kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "unknown report")
	}
	params, err := ResolveParams(policy, raw, Today(s.now(), s.loc))
	if err != nil {
		return nil, err
	}

	result := &Result{Kind: kind, Truncated: params.Truncated, Start: params.Start, End: params.End}
	if kind == enums.ReportSalesSummary {
		summary, err := s.salesSummary(ctx, params)
		if err != nil {
			return nil, err
		}
		result.Data = summary
		return result, nil
	}

	started := time.Now()
	out, err := s.query(ctx, params)
	if err != nil {
		s.recordFailure(kind, err)
		return nil, err
	}
	s.metrics.ObserveQuery(kind.String(), time.Since(started), out.count)

	result.Data = out.data
	result.Count = &out.count
	result.Page = out.page
	result.Truncated = result.Truncated || out.cut
	return result, nil
}

// queryResult is one kind's shaped rows. cut reports rows dropped at the
// kind's ceiling.
type queryResult struct {
	data  any
	count int
	page  *pagination.Page
	cut   bool
}

func rowsResult[T any](rows []T, cut bool, err error) (queryResult, error) {
	if err != nil {
		return queryResult{}, err
	}
	return queryResult{data: rows, count: len(rows), cut: cut}, nil
}

func (s *service) query(ctx context.Context, p Params) (queryResult, error) {
	switch p.Kind {
	case enums.ReportStoreSales:
		return rowsResult(s.repo.StoreSales(ctx, p))
	case enums.ReportItemSales:
		return rowsResult(s.repo.ItemSales(ctx, p))
	case enums.ReportItemSalesByHour:
		return rowsResult(s.repo.ItemSalesByHour(ctx, p))
	case enums.ReportTransactionItems:
		rows, hasMore, err := s.repo.TransactionItems(ctx, p)
		if err != nil {
			return queryResult{}, err
		}
		page := p.Page.Normalize()
		return queryResult{
			data:  rows,
			count: len(rows),
			page:  &pagination.Page{Limit: page.Limit, Offset: page.Offset, HasMore: hasMore},
		}, nil
	case enums.ReportVoidTransactions:
		return rowsResult(s.repo.VoidTransactions(ctx, p))
	case enums.ReportCategorySales:
		rows, cut, err := s.repo.CategorySales(ctx, p)
		if err != nil {
			return queryResult{}, err
		}
		return rowsResult(ApplyPercentages(rows), cut, nil)
	case enums.ReportStores:
		listing, cut, err := s.repo.StoreListing(ctx, p)
		if err != nil {
			return queryResult{}, err
		}
		return rowsResult(DescribeStores(listing), cut, nil)
	default:
		return queryResult{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("report %q has no query", p.Kind))
	}
}

func (s *service) salesSummary(ctx context.Context, p Params) (SalesSummary, error) {
	key := SummaryCacheKey(p.End, p.Scope())
	cached, state, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.ObserveCacheLookup(metrics.CacheError)
		s.warn(ctx, key, "summary cache read failed", err)
	case state == CacheFresh:
		s.metrics.ObserveCacheLookup(metrics.CacheHit)
		return cached, nil
	case state == CacheStale:
		s.metrics.ObserveCacheLookup(metrics.CacheStale)
	default:
		s.metrics.ObserveCacheLookup(metrics.CacheMiss)
	}

	started := time.Now()
	summary, err := s.computeSummary(ctx, p)
	if err != nil {
		s.recordFailure(p.Kind, err)
		return SalesSummary{}, err
	}
	s.metrics.ObserveQuery(p.Kind.String(), time.Since(started), 2)

	if err := s.cache.Set(ctx, key, summary); err != nil {
		s.warn(ctx, key, "summary cache write failed", err)
	}
	return summary, nil
}

// computeSummary fetches the target and previous day totals concurrently.
func (s *service) computeSummary(ctx context.Context, p Params) (SalesSummary, error) {
	var current, previous DayTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.repo.DayTotals(gctx, p.End, p.StoreID)
		current = totals
		return err
	})
	g.Go(func() error {
		totals, err := s.repo.DayTotals(gctx, p.End.AddDays(-1), p.StoreID)
		previous = totals
		return err
	})
	if err := g.Wait(); err != nil {
		return SalesSummary{}, err
	}
	return BuildSummary(p.End, p.StoreID, current, previous, s.now()), nil
}

func (s *service) recordFailure(kind enums.ReportKind, err error) {
	code := pkgerrors.CodeInternal
	if typed := pkgerrors.As(err); typed != nil {
		code = typed.Code()
	}
	s.metrics.IncFailure(kind.String(), string(code))
}

func (s *service) warn(ctx context.Context, key, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"cache_key": key, "error": err.Error()})
	s.logg.Warn(ctx, msg)
}
