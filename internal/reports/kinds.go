package reports

import (
	"fmt"

	"github.com/angelmondragon/salesdash-backend/pkg/enums"
)

// Policy bounds the window and size of a report kind.
type Policy struct {
	Kind            enums.ReportKind
	DefaultDays     int
	MaxLookbackDays int
	RowLimit        int
	// Paged kinds accept limit/offset and treat RowLimit as the page ceiling.
	Paged bool
	// SingleDate kinds evaluate exactly one business date.
	SingleDate bool
	// ItemFilter kinds honor item_id.
	ItemFilter bool
}

var policies = map[enums.ReportKind]Policy{
	enums.ReportStoreSales: {
		Kind: enums.ReportStoreSales, DefaultDays: 7, MaxLookbackDays: 366, RowLimit: 500,
	},
	enums.ReportItemSales: {
		Kind: enums.ReportItemSales, DefaultDays: 7, MaxLookbackDays: 92, RowLimit: 500,
	},
	enums.ReportItemSalesByHour: {
		Kind: enums.ReportItemSalesByHour, DefaultDays: 7, MaxLookbackDays: 31, RowLimit: 500, ItemFilter: true,
	},
	enums.ReportTransactionItems: {
		Kind: enums.ReportTransactionItems, DefaultDays: 7, MaxLookbackDays: 31, RowLimit: 100, Paged: true,
	},
	enums.ReportVoidTransactions: {
		Kind: enums.ReportVoidTransactions, DefaultDays: 30, MaxLookbackDays: 92, RowLimit: 200,
	},
	enums.ReportCategorySales: {
		Kind: enums.ReportCategorySales, DefaultDays: 30, MaxLookbackDays: 92, RowLimit: 100,
	},
	enums.ReportSalesSummary: {
		Kind: enums.ReportSalesSummary, DefaultDays: 1, MaxLookbackDays: 1, SingleDate: true,
	},
	enums.ReportStores: {
		Kind: enums.ReportStores, DefaultDays: 30, MaxLookbackDays: 366, RowLimit: 500,
	},
}

// PolicyFor returns the query policy of kind.
func PolicyFor(kind enums.ReportKind) (Policy, error) {
	policy, ok := policies[kind]
	if !ok {
		return Policy{}, fmt.Errorf("no policy for report kind %q", kind)
	}
	return policy, nil
}

// MustPolicy is PolicyFor for kinds known at compile time.
func MustPolicy(kind enums.ReportKind) Policy {
	policy, err := PolicyFor(kind)
	if err != nil {
		panic(err)
	}
	return policy
}
