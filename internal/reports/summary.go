package reports

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	trendFloor        = decimal.NewFromInt(-99)
	trendCeiling      = decimal.NewFromInt(999)
	customersPerOrder = decimal.NewFromFloat(1.5)
)

// SalesSummary compares one business date with the day before it.
type SalesSummary struct {
	Date               Date            `json:"date"`
	PreviousDate       Date            `json:"previous_date"`
	StoreID            *int64          `json:"store_id"`
	Sales              decimal.Decimal `json:"sales"`
	PreviousSales      decimal.Decimal `json:"previous_sales"`
	SalesTrend         float64         `json:"sales_trend"`
	Orders             int64           `json:"orders"`
	PreviousOrders     int64           `json:"previous_orders"`
	OrdersTrend        float64         `json:"orders_trend"`
	Customers          int64           `json:"customers"`
	PreviousCustomers  int64           `json:"previous_customers"`
	CustomersTrend     float64         `json:"customers_trend"`
	CustomersEstimated bool            `json:"customers_estimated"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// Trend is the percent change from previous to target, clamped to
// [-99, 999] and rounded to one decimal. It is zero when either side is
// not positive.
func Trend(target, previous decimal.Decimal) float64 {
	if !target.IsPositive() || !previous.IsPositive() {
		return 0
	}
	change := target.Sub(previous).Div(previous).Mul(hundred)
	if change.LessThan(trendFloor) {
		change = trendFloor
	}
	if change.GreaterThan(trendCeiling) {
		change = trendCeiling
	}
	return change.Round(1).InexactFloat64()
}

// EstimateCustomers approximates guests as 1.5 per order. It is a placeholder
// until guest counts are trusted upstream.
func EstimateCustomers(orders int64) int64 {
	return decimal.NewFromInt(orders).Mul(customersPerOrder).Round(0).IntPart()
}

// BuildSummary derives the summary figures from two day totals.
func BuildSummary(date Date, storeID *int64, current, previous DayTotals, generatedAt time.Time) SalesSummary {
	customers := EstimateCustomers(current.Orders)
	previousCustomers := EstimateCustomers(previous.Orders)
	return SalesSummary{
		Date:               date,
		PreviousDate:       date.AddDays(-1),
		StoreID:            storeID,
		Sales:              current.Sales,
		PreviousSales:      previous.Sales,
		SalesTrend:         Trend(current.Sales, previous.Sales),
		Orders:             current.Orders,
		PreviousOrders:     previous.Orders,
		OrdersTrend:        Trend(decimal.NewFromInt(current.Orders), decimal.NewFromInt(previous.Orders)),
		Customers:          customers,
		PreviousCustomers:  previousCustomers,
		CustomersTrend:     Trend(decimal.NewFromInt(customers), decimal.NewFromInt(previousCustomers)),
		CustomersEstimated: true,
		GeneratedAt:        generatedAt.UTC(),
	}
}
