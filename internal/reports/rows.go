package reports

import (
	"github.com/shopspring/decimal"
)

// StoreSalesRow is one store's totals for one business date.
type StoreSalesRow struct {
	StoreID      int64           `json:"store_id" gorm:"column:store_id"`
	StoreName    string          `json:"store_name" gorm:"column:store_name"`
	BusinessDate Date            `json:"business_date" gorm:"column:business_date"`
	NetSales     decimal.Decimal `json:"net_sales" gorm:"column:net_sales"`
	GrossSales   decimal.Decimal `json:"gross_sales" gorm:"column:gross_sales"`
	CheckCount   int64           `json:"check_count" gorm:"column:check_count"`
	GuestCount   int64           `json:"guest_count" gorm:"column:guest_count"`
}

// ItemSalesRow aggregates one item at one store for one business date.
type ItemSalesRow struct {
	ItemID       int64           `json:"item_id" gorm:"column:item_id"`
	ItemName     string          `json:"item_name" gorm:"column:item_name"`
	StoreID      int64           `json:"store_id" gorm:"column:store_id"`
	StoreName    string          `json:"store_name" gorm:"column:store_name"`
	BusinessDate Date            `json:"business_date" gorm:"column:business_date"`
	QuantitySold int64           `json:"quantity_sold" gorm:"column:quantity_sold"`
	SalesAmount  decimal.Decimal `json:"sales_amount" gorm:"column:sales_amount"`
}

// ItemHourRow aggregates one item for one hour of day across the requested
// dates. Store fields are set only when the request was store scoped.
type ItemHourRow struct {
	ItemID       int64           `json:"item_id" gorm:"column:item_id"`
	ItemName     string          `json:"item_name" gorm:"column:item_name"`
	StoreID      *int64          `json:"store_id,omitempty" gorm:"column:store_id"`
	StoreName    *string         `json:"store_name,omitempty" gorm:"column:store_name"`
	Hour         int             `json:"hour" gorm:"column:hour"`
	QuantitySold int64           `json:"quantity_sold" gorm:"column:quantity_sold"`
	SalesAmount  decimal.Decimal `json:"sales_amount" gorm:"column:sales_amount"`
}

// TransactionLineRow is a single check line.
type TransactionLineRow struct {
	LineID       int64           `json:"line_id" gorm:"column:line_id"`
	ItemID       int64           `json:"item_id" gorm:"column:item_id"`
	ItemName     string          `json:"item_name" gorm:"column:item_name"`
	CheckNumber  int64           `json:"check_number" gorm:"column:check_number"`
	BusinessDate Date            `json:"business_date" gorm:"column:business_date"`
	Price        decimal.Decimal `json:"price" gorm:"column:price"`
	Quantity     int64           `json:"quantity" gorm:"column:quantity"`
	RecordType   int             `json:"record_type" gorm:"column:record_type"`
	CategoryID   *int64          `json:"category_id" gorm:"column:category_id"`
	CategoryName string          `json:"category_name" gorm:"column:category_name"`
	StoreID      int64           `json:"store_id" gorm:"column:store_id"`
	EmployeeID   *int64          `json:"employee_id" gorm:"column:employee_id"`
}

// VoidRow is a voided line.
type VoidRow struct {
	VoidID       int64           `json:"void_id" gorm:"column:void_id"`
	CheckID      int64           `json:"check_id" gorm:"column:check_id"`
	ItemID       int64           `json:"item_id" gorm:"column:item_id"`
	ItemName     string          `json:"item_name" gorm:"column:item_name"`
	Price        decimal.Decimal `json:"price" gorm:"column:price"`
	BusinessDate Date            `json:"business_date" gorm:"column:business_date"`
	Hour         int             `json:"hour" gorm:"column:hour"`
	Minute       int             `json:"minute" gorm:"column:minute"`
	VoidReasonID *int64          `json:"void_reason_id" gorm:"column:void_reason_id"`
	EmployeeID   *int64          `json:"employee_id" gorm:"column:employee_id"`
	ManagerID    *int64          `json:"manager_id" gorm:"column:manager_id"`
	StoreID      int64           `json:"store_id" gorm:"column:store_id"`
}

// CategorySalesRow is one category's share of sales for the window.
type CategorySalesRow struct {
	CategoryID   *int64          `json:"category_id" gorm:"column:category_id"`
	CategoryName string          `json:"category_name" gorm:"column:category_name"`
	SalesAmount  decimal.Decimal `json:"sales_amount" gorm:"column:sales_amount"`
	WindowTotal  decimal.Decimal `json:"-" gorm:"column:window_total"`
	Percentage   float64         `json:"percentage" gorm:"-"`
}

// StoreDescriptor identifies a store with its latest known sales snapshot.
type StoreDescriptor struct {
	StoreID            int64           `json:"store_id"`
	StoreName          string          `json:"store_name"`
	LatestBusinessDate Date            `json:"latest_business_date"`
	LatestNetSales     decimal.Decimal `json:"latest_net_sales"`
}

// DayTotals are the summed daily_sales figures for one business date.
type DayTotals struct {
	Sales  decimal.Decimal `gorm:"column:sales"`
	Orders int64           `gorm:"column:orders"`
}
