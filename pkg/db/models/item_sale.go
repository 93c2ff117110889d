package models

import "github.com/shopspring/decimal"

// ItemSaleDaily aggregates item sales per store per business date.
type ItemSaleDaily struct {
	ItemID       int64           `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	StoreID      int64           `gorm:"column:store_id;primaryKey;autoIncrement:false"`
	BusinessDate string          `gorm:"column:business_date;type:date;primaryKey"`
	QuantitySold int64           `gorm:"column:quantity_sold;not null"`
	SalesAmount  decimal.Decimal `gorm:"column:sales_amount;type:numeric(14,2);not null"`
}

func (ItemSaleDaily) TableName() string { return "item_sales_daily" }

// ItemSaleHourly aggregates item sales per store per business date and hour.
type ItemSaleHourly struct {
	ItemID       int64           `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	StoreID      int64           `gorm:"column:store_id;primaryKey;autoIncrement:false"`
	BusinessDate string          `gorm:"column:business_date;type:date;primaryKey"`
	Hour         int             `gorm:"column:hour;primaryKey;autoIncrement:false"`
	QuantitySold int64           `gorm:"column:quantity_sold;not null"`
	SalesAmount  decimal.Decimal `gorm:"column:sales_amount;type:numeric(14,2);not null"`
}

func (ItemSaleHourly) TableName() string { return "item_sales_hourly" }
