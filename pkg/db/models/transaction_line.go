package models

import "github.com/shopspring/decimal"

// TransactionLine is a single line on a check. Reversal record types carry
// negative prices.
type TransactionLine struct {
	LineID       int64           `gorm:"column:line_id;primaryKey"`
	CheckNumber  int64           `gorm:"column:check_number;not null"`
	ItemID       int64           `gorm:"column:item_id;not null"`
	BusinessDate string          `gorm:"column:business_date;type:date;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Quantity     int64           `gorm:"column:quantity;not null"`
	RecordType   int             `gorm:"column:record_type;not null"`
	CategoryID   *int64          `gorm:"column:category_id"`
	StoreID      int64           `gorm:"column:store_id;not null"`
	EmployeeID   *int64          `gorm:"column:employee_id"`
}

func (TransactionLine) TableName() string { return "transaction_lines" }
