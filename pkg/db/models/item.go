package models

// Item is the menu item dimension.
type Item struct {
	ItemID     int64  `gorm:"column:item_id;primaryKey;autoIncrement:false"`
	ItemName   string `gorm:"column:item_name;not null"`
	CategoryID *int64 `gorm:"column:category_id"`
}

func (Item) TableName() string { return "items" }
