package models

import "github.com/shopspring/decimal"

// DailySales holds one row per store per business date, written upstream.
type DailySales struct {
	StoreID      int64           `gorm:"column:store_id;primaryKey;autoIncrement:false"`
	BusinessDate string          `gorm:"column:business_date;type:date;primaryKey"`
	NetSales     decimal.Decimal `gorm:"column:net_sales;type:numeric(14,2);not null"`
	GrossSales   decimal.Decimal `gorm:"column:gross_sales;type:numeric(14,2);not null"`
	CheckCount   int64           `gorm:"column:check_count;not null"`
	GuestCount   int64           `gorm:"column:guest_count;not null"`
}

func (DailySales) TableName() string { return "daily_sales" }
