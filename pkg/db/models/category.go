package models

// Category is the menu category dimension.
type Category struct {
	CategoryID   int64  `gorm:"column:category_id;primaryKey;autoIncrement:false"`
	CategoryName string `gorm:"column:category_name;not null"`
}

func (Category) TableName() string { return "categories" }
