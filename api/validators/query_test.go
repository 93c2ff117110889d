package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StoreID   string `query:"store_id" validate:"omitempty,number"`
	Ignored   int    `query:"ignored"`
}

func TestDecodeQueryFillsAndNormalizes(t *testing.T) {
	r := httptest.NewRequest("GET", "/reports/store-sales?start_date=%202024-01-01%20&store_id=null&ignored=5", nil)
	var q sampleQuery
	require.NoError(t, DecodeQuery(r, &q))
	assert.Equal(t, "2024-01-01", q.StartDate)
	assert.Equal(t, "", q.StoreID)
	assert.Equal(t, 0, q.Ignored)

	r = httptest.NewRequest("GET", "/?store_id=undefined", nil)
	require.NoError(t, DecodeQuery(r, &q))
	assert.Equal(t, "", q.StoreID)
}

func TestDecodeQueryRejectsMalformedValues(t *testing.T) {
	cases := []struct {
		url   string
		field string
	}{
		{url: "/?start_date=01/02/2024", field: "start_date"},
		{url: "/?start_date=2024-13-01", field: "start_date"},
		{url: "/?store_id=abc", field: "store_id"},
		{url: "/?store_id=-4", field: "store_id"},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			var q sampleQuery
			err := DecodeQuery(httptest.NewRequest("GET", tc.url, nil), &q)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			assert.Equal(t, pkgerrors.CodeInvalidParameter, typed.Code())
			details := typed.Details().(map[string]any)
			assert.Equal(t, tc.field, details["field"])
		})
	}
}

func TestDecodeQueryRequiresStructPointer(t *testing.T) {
	var q sampleQuery
	err := DecodeQuery(httptest.NewRequest("GET", "/", nil), q)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeInternal))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "abc", clean("  abcdef ", 3))
	assert.Equal(t, "abc", clean("abc", 0))
	assert.Equal(t, "2024-01-02", clean("2024-01\x00-02\n", 64))
	assert.Equal(t, "café", clean("cafés", 4))
}
