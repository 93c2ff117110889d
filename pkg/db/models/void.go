package models

import "github.com/shopspring/decimal"

// Void records a line or check cancelled after entry.
type Void struct {
	VoidID       int64           `gorm:"column:void_id;primaryKey"`
	CheckID      int64           `gorm:"column:check_id;not null"`
	ItemID       int64           `gorm:"column:item_id;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	BusinessDate string          `gorm:"column:business_date;type:date;not null"`
	Hour         int             `gorm:"column:hour;not null"`
	Minute       int             `gorm:"column:minute;not null"`
	VoidReasonID *int64          `gorm:"column:void_reason_id"`
	EmployeeID   *int64          `gorm:"column:employee_id"`
	ManagerID    *int64          `gorm:"column:manager_id"`
	StoreID      int64           `gorm:"column:store_id;not null"`
}

func (Void) TableName() string { return "voids" }
