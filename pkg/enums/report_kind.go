package enums

import "fmt"

// ReportKind names a reporting endpoint and keys its query policy.
type ReportKind string

const (
	ReportStoreSales       ReportKind = "store-sales"
	ReportItemSales        ReportKind = "item-sales"
	ReportItemSalesByHour  ReportKind = "item-sales-by-hour"
	ReportTransactionItems ReportKind = "transaction-items"
	ReportVoidTransactions ReportKind = "void-transactions"
	ReportCategorySales    ReportKind = "category-sales"
	ReportSalesSummary     ReportKind = "sales-summary"
	ReportStores           ReportKind = "stores"
)

var validReportKinds = []ReportKind{
	ReportStoreSales,
	ReportItemSales,
	ReportItemSalesByHour,
	ReportTransactionItems,
	ReportVoidTransactions,
	ReportCategorySales,
	ReportSalesSummary,
	ReportStores,
}

// String implements fmt.Stringer.
func (k ReportKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known ReportKind.
func (k ReportKind) IsValid() bool {
	for _, candidate := range validReportKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseReportKind converts raw input into a ReportKind.
func ParseReportKind(value string) (ReportKind, error) {
	for _, candidate := range validReportKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report kind %q", value)
}

// ReportKinds returns every known kind in declaration order.
func ReportKinds() []ReportKind {
	out := make([]ReportKind, len(validReportKinds))
	copy(out, validReportKinds)
	return out
}
