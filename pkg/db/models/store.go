package models

// Store is the store dimension; fact rows reference it by store_id.
type Store struct {
	StoreID   int64  `gorm:"column:store_id;primaryKey;autoIncrement:false"`
	StoreName string `gorm:"column:store_name;not null"`
}

func (Store) TableName() string { return "stores" }
