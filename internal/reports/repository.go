package reports

import (
	"context"
	"fmt"
	"slices"

	"github.com/angelmondragon/salesdash-backend/pkg/db"
	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Querier runs a bound raw query under ctx. *db.Client satisfies it.
type Querier interface {
	Raw(ctx context.Context, query string, args ...any) *gorm.DB
}

// Repository runs the read queries behind every report kind.
type Repository struct {
	db Querier
}

// NewRepository binds the repository to the shared store client.
func NewRepository(q Querier) (*Repository, error) {
	if q == nil {
		return nil, fmt.Errorf("querier required")
	}
	return &Repository{db: q}, nil
}

// StoreSales returns daily store rows in date order. When the window holds more
// rows than the ceiling the newest rows are kept and the cut is reported.
func (r *Repository) StoreSales(ctx context.Context, p Params) ([]StoreSalesRow, bool, error) {
	q := newSelect("daily_sales d",
		"d.store_id",
		storeLabel("d")+" AS store_name",
		"d.business_date",
		"d.net_sales",
		"d.gross_sales",
		"d.check_count",
		"d.guest_count",
	).
		leftJoin("stores s ON s.store_id = d.store_id").
		between("d.business_date", p.Start, p.End).
		equalIf("d.store_id", p.StoreID).
		order("d.business_date DESC", "d.store_id DESC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []StoreSalesRow{}
	if err := r.scan(ctx, enums.ReportStoreSales, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	slices.Reverse(rows)
	return rows, cut, nil
}

func (r *Repository) ItemSales(ctx context.Context, p Params) ([]ItemSalesRow, bool, error) {
	q := newSelect("item_sales_daily f",
		"f.item_id",
		itemLabel("f")+" AS item_name",
		"f.store_id",
		storeLabel("f")+" AS store_name",
		"f.business_date",
		"f.quantity_sold",
		"f.sales_amount",
	).
		leftJoin("items i ON i.item_id = f.item_id").
		leftJoin("stores s ON s.store_id = f.store_id").
		between("f.business_date", p.Start, p.End).
		equalIf("f.store_id", p.StoreID).
		order("f.business_date DESC", "f.sales_amount DESC", "f.item_id ASC", "f.store_id ASC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []ItemSalesRow{}
	if err := r.scan(ctx, enums.ReportItemSales, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	return rows, cut, nil
}

// ItemSalesByHour buckets by hour of day across every date in the window.
// Unscoped requests combine all stores into one row per item and hour. Rows
// come back in hour order; a cut drops the earliest hours.
func (r *Repository) ItemSalesByHour(ctx context.Context, p Params) ([]ItemHourRow, bool, error) {
	columns := []string{
		"h.item_id",
		itemLabel("h") + " AS item_name",
		"h.hour",
		"CAST(SUM(h.quantity_sold) AS BIGINT) AS quantity_sold",
		"SUM(h.sales_amount) AS sales_amount",
	}
	groupBy := []string{"h.item_id", "i.item_name", "h.hour"}
	q := newSelect("item_sales_hourly h").leftJoin("items i ON i.item_id = h.item_id")
	if p.StoreID != nil {
		columns = append(columns, "h.store_id", storeLabel("h")+" AS store_name")
		groupBy = append(groupBy, "h.store_id", "s.store_name")
		q.leftJoin("stores s ON s.store_id = h.store_id")
	}
	q.columns = columns
	q.between("h.business_date", p.Start, p.End).
		equalIf("h.store_id", p.StoreID).
		equalIf("h.item_id", p.ItemID).
		group(groupBy...).
		order("h.hour DESC", "h.item_id DESC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []ItemHourRow{}
	if err := r.scan(ctx, enums.ReportItemSalesByHour, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	slices.Reverse(rows)
	return rows, cut, nil
}

// TransactionItems returns one page of lines and whether another page exists.
func (r *Repository) TransactionItems(ctx context.Context, p Params) ([]TransactionLineRow, bool, error) {
	page := p.Page.Normalize()
	q := newSelect("transaction_lines t",
		"t.line_id",
		"t.item_id",
		itemLabel("t")+" AS item_name",
		"t.check_number",
		"t.business_date",
		"t.price",
		"t.quantity",
		"t.record_type",
		"t.category_id",
		categoryLabel("t")+" AS category_name",
		"t.store_id",
		"t.employee_id",
	).
		leftJoin("items i ON i.item_id = t.item_id").
		leftJoin("categories c ON c.category_id = t.category_id").
		between("t.business_date", p.Start, p.End).
		equalIf("t.store_id", p.StoreID).
		order("t.business_date DESC", "t.check_number DESC", "t.line_id ASC").
		page(pagination.LimitWithBuffer(page.Limit), page.Offset)

	rows := []TransactionLineRow{}
	if err := r.scan(ctx, enums.ReportTransactionItems, q, &rows); err != nil {
		return nil, false, err
	}
	hasMore := len(rows) > page.Limit
	if hasMore {
		rows = rows[:page.Limit]
	}
	return rows, hasMore, nil
}

func (r *Repository) VoidTransactions(ctx context.Context, p Params) ([]VoidRow, bool, error) {
	q := newSelect("voids v",
		"v.void_id",
		"v.check_id",
		"v.item_id",
		itemLabel("v")+" AS item_name",
		"v.price",
		"v.business_date",
		"v.hour",
		"v.minute",
		"v.void_reason_id",
		"v.employee_id",
		"v.manager_id",
		"v.store_id",
	).
		leftJoin("items i ON i.item_id = v.item_id").
		between("v.business_date", p.Start, p.End).
		equalIf("v.store_id", p.StoreID).
		order("v.business_date DESC", "v.hour DESC", "v.minute DESC", "v.void_id ASC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []VoidRow{}
	if err := r.scan(ctx, enums.ReportVoidTransactions, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	return rows, cut, nil
}

// CategorySales sums line revenue per category. Every row carries the total
// across all categories in the window so shares stay correct after the cut.
// Percentages are left to the caller.
func (r *Repository) CategorySales(ctx context.Context, p Params) ([]CategorySalesRow, bool, error) {
	q := newSelect("transaction_lines t",
		"t.category_id",
		categoryLabel("t")+" AS category_name",
		"SUM(t.price * t.quantity) AS sales_amount",
		"SUM(SUM(t.price * t.quantity)) OVER () AS window_total",
	).
		leftJoin("categories c ON c.category_id = t.category_id").
		between("t.business_date", p.Start, p.End).
		equalIf("t.store_id", p.StoreID).
		group("t.category_id", "c.category_name").
		order("sales_amount DESC", "t.category_id ASC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []CategorySalesRow{}
	if err := r.scan(ctx, enums.ReportCategorySales, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	return rows, cut, nil
}

// StoreListing returns the latest daily row of every store with sales in the
// window, ordered by store id.
func (r *Repository) StoreListing(ctx context.Context, p Params) ([]StoreSalesRow, bool, error) {
	latest := newSelect("daily_sales",
		"store_id",
		"MAX(business_date) AS business_date",
	).
		between("business_date", p.Start, p.End).
		equalIf("store_id", p.StoreID).
		group("store_id")
	latestSQL, latestArgs := latest.build()

	q := newSelect("daily_sales d",
		"d.store_id",
		storeLabel("d")+" AS store_name",
		"d.business_date",
		"d.net_sales",
		"d.gross_sales",
		"d.check_count",
		"d.guest_count",
	).
		join("("+latestSQL+") m ON m.store_id = d.store_id AND m.business_date = d.business_date", latestArgs...).
		leftJoin("stores s ON s.store_id = d.store_id").
		order("d.store_id ASC").
		page(probeLimit(p.Page.Limit), 0)

	rows := []StoreSalesRow{}
	if err := r.scan(ctx, enums.ReportStores, q, &rows); err != nil {
		return nil, false, err
	}
	rows, cut := capRows(rows, p.Page.Limit)
	return rows, cut, nil
}

// DayTotals sums net sales and check counts for one business date.
func (r *Repository) DayTotals(ctx context.Context, date Date, storeID *int64) (DayTotals, error) {
	q := newSelect("daily_sales d",
		"COALESCE(SUM(d.net_sales), 0) AS sales",
		"CAST(COALESCE(SUM(d.check_count), 0) AS BIGINT) AS orders",
	).
		where("d.business_date = ?", date.String()).
		equalIf("d.store_id", storeID)

	var totals DayTotals
	if err := r.scan(ctx, enums.ReportSalesSummary, q, &totals); err != nil {
		return DayTotals{}, err
	}
	return totals, nil
}

// probeLimit asks for one row past the ceiling so a cut can be detected.
func probeLimit(limit int) int {
	if limit <= 0 {
		return 0
	}
	return limit + 1
}

// capRows trims rows to limit and reports whether anything was dropped.
func capRows[T any](rows []T, limit int) ([]T, bool) {
	if limit <= 0 || len(rows) <= limit {
		return rows, false
	}
	return rows[:limit], true
}

func (r *Repository) scan(ctx context.Context, kind enums.ReportKind, q *selectQuery, dest any) error {
	sql, args := q.build()
	if err := r.db.Raw(ctx, sql, args...).Scan(dest).Error; err != nil {
		return classifyQueryError(kind, err)
	}
	return nil
}

func classifyQueryError(kind enums.ReportKind, err error) error {
	if db.IsTimeout(err) {
		return pkgerrors.Wrap(pkgerrors.CodeQueryTimeout, err, fmt.Sprintf("%s query timed out", kind))
	}
	return pkgerrors.Wrap(pkgerrors.CodeQueryFailed, err, fmt.Sprintf("%s query failed", kind))
}
