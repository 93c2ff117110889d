package reports

import (
	"testing"

	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = NewDate(2024, 3, 15)

func TestResolveParamsDefaultsWindowEndingToday(t *testing.T) {
	params, err := ResolveParams(MustPolicy(enums.ReportStoreSales), RawParams{}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", params.Start.String())
	assert.Equal(t, "2024-03-15", params.End.String())
	assert.False(t, params.Truncated)
	assert.Nil(t, params.StoreID)
	assert.Equal(t, 500, params.Page.Limit)

	params, err = ResolveParams(MustPolicy(enums.ReportVoidTransactions), RawParams{}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-15", params.Start.String())
}

func TestResolveParamsPartialDates(t *testing.T) {
	policy := MustPolicy(enums.ReportItemSales)

	params, err := ResolveParams(policy, RawParams{StartDate: "2024-03-01"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", params.Start.String())
	assert.Equal(t, "2024-03-15", params.End.String())

	params, err = ResolveParams(policy, RawParams{EndDate: "2024-02-10"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-04", params.Start.String())
	assert.Equal(t, "2024-02-10", params.End.String())
}

func TestResolveParamsLegacyDate(t *testing.T) {
	params, err := ResolveParams(MustPolicy(enums.ReportStoreSales), RawParams{Date: "2024-01-01"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", params.Start.String())
	assert.Equal(t, "2024-01-01", params.End.String())

	params, err = ResolveParams(MustPolicy(enums.ReportStoreSales), RawParams{Date: "2024-01-01", StartDate: "2024-01-05", EndDate: "2024-01-06"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", params.Start.String(), "explicit range wins over date")
}

func TestResolveParamsRejectsEndBeforeStart(t *testing.T) {
	_, err := ResolveParams(MustPolicy(enums.ReportStoreSales), RawParams{StartDate: "2024-02-01", EndDate: "2024-01-01"}, testToday)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidParameter, typed.Code())
	assert.Equal(t, map[string]any{"field": "start_date"}, typed.Details())
}

func TestResolveParamsRejectsMalformedDate(t *testing.T) {
	_, err := ResolveParams(MustPolicy(enums.ReportStoreSales), RawParams{EndDate: "03/15/2024"}, testToday)
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeInvalidParameter))
	assert.Equal(t, map[string]any{"field": "end_date"}, pkgerrors.As(err).Details())
}

func TestResolveParamsClampsLookback(t *testing.T) {
	params, err := ResolveParams(MustPolicy(enums.ReportTransactionItems), RawParams{StartDate: "2024-01-01", EndDate: "2024-03-15"}, testToday)
	require.NoError(t, err)
	assert.True(t, params.Truncated)
	assert.Equal(t, "2024-02-14", params.Start.String())
	assert.Equal(t, 31, params.Start.DaysThrough(params.End))

	params, err = ResolveParams(MustPolicy(enums.ReportTransactionItems), RawParams{StartDate: "2024-02-14", EndDate: "2024-03-15"}, testToday)
	require.NoError(t, err)
	assert.False(t, params.Truncated, "a window exactly at the limit is not clamped")
}

func TestResolveParamsStoreID(t *testing.T) {
	policy := MustPolicy(enums.ReportStoreSales)
	for _, absent := range []string{"", "  ", "null", "undefined", "NULL"} {
		params, err := ResolveParams(policy, RawParams{StoreID: absent}, testToday)
		require.NoError(t, err, absent)
		assert.Nil(t, params.StoreID, absent)
		assert.Equal(t, "all", params.Scope())
	}

	params, err := ResolveParams(policy, RawParams{StoreID: "0"}, testToday)
	require.NoError(t, err)
	require.NotNil(t, params.StoreID)
	assert.Equal(t, int64(0), *params.StoreID)
	assert.Equal(t, "0", params.Scope())

	for _, bad := range []string{"abc", "-1", "1.5"} {
		_, err := ResolveParams(policy, RawParams{StoreID: bad}, testToday)
		require.True(t, pkgerrors.Is(err, pkgerrors.CodeInvalidParameter), bad)
		assert.Equal(t, map[string]any{"field": "store_id"}, pkgerrors.As(err).Details())
	}
}

func TestResolveParamsItemIDOnlyForHourly(t *testing.T) {
	params, err := ResolveParams(MustPolicy(enums.ReportItemSalesByHour), RawParams{ItemID: "42"}, testToday)
	require.NoError(t, err)
	require.NotNil(t, params.ItemID)
	assert.Equal(t, int64(42), *params.ItemID)

	_, err = ResolveParams(MustPolicy(enums.ReportItemSalesByHour), RawParams{ItemID: "x"}, testToday)
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeInvalidParameter))

	params, err = ResolveParams(MustPolicy(enums.ReportItemSales), RawParams{ItemID: "42"}, testToday)
	require.NoError(t, err)
	assert.Nil(t, params.ItemID)
}

func TestResolveParamsPaging(t *testing.T) {
	policy := MustPolicy(enums.ReportTransactionItems)

	params, err := ResolveParams(policy, RawParams{}, testToday)
	require.NoError(t, err)
	assert.Equal(t, 100, params.Page.Limit)
	assert.Equal(t, 0, params.Page.Offset)

	params, err = ResolveParams(policy, RawParams{Limit: "5000", Offset: "200"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, 100, params.Page.Limit)
	assert.Equal(t, 200, params.Page.Offset)

	_, err = ResolveParams(policy, RawParams{Offset: "-1"}, testToday)
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeInvalidParameter))
}

func TestResolveParamsSummaryUsesSingleDate(t *testing.T) {
	policy := MustPolicy(enums.ReportSalesSummary)

	params, err := ResolveParams(policy, RawParams{}, testToday)
	require.NoError(t, err)
	assert.Equal(t, testToday, params.Start)
	assert.Equal(t, testToday, params.End)

	params, err = ResolveParams(policy, RawParams{Date: "2024-01-02", StoreID: "7"}, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", params.End.String())
	assert.Equal(t, "7", params.Scope())
}
