package reports

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyPercentages sets each row's share of the window total, rounded to one
// decimal. A non-positive total leaves every share at zero.
func ApplyPercentages(rows []CategorySalesRow) []CategorySalesRow {
	total := windowTotal(rows)
	for i := range rows {
		if !total.IsPositive() {
			rows[i].Percentage = 0
			continue
		}
		rows[i].Percentage = rows[i].SalesAmount.Div(total).Mul(hundred).Round(1).InexactFloat64()
	}
	return rows
}

// windowTotal is the query's total across every category, or the sum of rows
// when they carry none.
func windowTotal(rows []CategorySalesRow) decimal.Decimal {
	if len(rows) > 0 && !rows[0].WindowTotal.IsZero() {
		return rows[0].WindowTotal
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.SalesAmount)
	}
	return total
}

// DescribeStores keeps the first row seen per store and returns the
// descriptors ordered by store id.
func DescribeStores(listing []StoreSalesRow) []StoreDescriptor {
	seen := make(map[int64]struct{}, len(listing))
	out := make([]StoreDescriptor, 0)
	for _, row := range listing {
		if _, ok := seen[row.StoreID]; ok {
			continue
		}
		seen[row.StoreID] = struct{}{}
		out = append(out, StoreDescriptor{
			StoreID:            row.StoreID,
			StoreName:          row.StoreName,
			LatestBusinessDate: row.BusinessDate,
			LatestNetSales:     row.NetSales,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoreID < out[j].StoreID })
	return out
}
