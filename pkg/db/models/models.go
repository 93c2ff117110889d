package models

// All lists every reporting table model, used for sqlite test schemas.
func All() []any {
	return []any{
		&Store{},
		&Category{},
		&Item{},
		&DailySales{},
		&ItemSaleDaily{},
		&ItemSaleHourly{},
		&TransactionLine{},
		&Void{},
	}
}
