package reports

import (
	"strconv"
	"strings"

	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/pagination"
)

// RawParams carries the query string exactly as the client sent it.
type RawParams struct {
	Date      string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	StoreID   string `query:"store_id" validate:"omitempty,number"`
	ItemID    string `query:"item_id" validate:"omitempty,number"`
	Limit     string `query:"limit" validate:"omitempty,number"`
	Offset    string `query:"offset" validate:"omitempty,number"`
}

// Params is a validated, defaulted and clamped report request.
type Params struct {
	Kind      enums.ReportKind
	Start     Date
	End       Date
	StoreID   *int64
	ItemID    *int64
	Page      pagination.Params
	Truncated bool
}

// Scope renders the store scope for cache keys and logs.
func (p Params) Scope() string {
	if p.StoreID == nil {
		return "all"
	}
	return strconv.FormatInt(*p.StoreID, 10)
}

// ResolveParams applies the parameter contract of policy to raw. today is the
// current business date in the reporting location.
func ResolveParams(policy Policy, raw RawParams, today Date) (Params, error) {
	params := Params{Kind: policy.Kind}

	storeID, err := parseID("store_id", raw.StoreID)
	if err != nil {
		return Params{}, err
	}
	params.StoreID = storeID

	if policy.ItemFilter {
		itemID, err := parseID("item_id", raw.ItemID)
		if err != nil {
			return Params{}, err
		}
		params.ItemID = itemID
	}

	if policy.SingleDate {
		target, err := resolveSingleDate(raw, today)
		if err != nil {
			return Params{}, err
		}
		params.Start, params.End = target, target
		return params, nil
	}

	start, end, err := resolveWindow(policy, raw, today)
	if err != nil {
		return Params{}, err
	}
	if span := start.DaysThrough(end); policy.MaxLookbackDays > 0 && span > policy.MaxLookbackDays {
		start = end.AddDays(-(policy.MaxLookbackDays - 1))
		params.Truncated = true
	}
	params.Start, params.End = start, end

	page, err := resolvePage(policy, raw)
	if err != nil {
		return Params{}, err
	}
	params.Page = page
	return params, nil
}

func resolveWindow(policy Policy, raw RawParams, today Date) (Date, Date, error) {
	startRaw, endRaw := normalize(raw.StartDate), normalize(raw.EndDate)
	if startRaw == "" && endRaw == "" {
		if single := normalize(raw.Date); single != "" {
			startRaw, endRaw = single, single
		}
	}

	var start, end Date
	var err error
	if endRaw != "" {
		if end, err = parseDateParam("end_date", endRaw); err != nil {
			return Date{}, Date{}, err
		}
	} else {
		end = today
	}
	if startRaw != "" {
		if start, err = parseDateParam("start_date", startRaw); err != nil {
			return Date{}, Date{}, err
		}
	} else {
		start = end.AddDays(-(policy.DefaultDays - 1))
	}

	if start.After(end) {
		return Date{}, Date{}, pkgerrors.InvalidParameter("start_date", "start_date must be on or before end_date")
	}
	return start, end, nil
}

func resolveSingleDate(raw RawParams, today Date) (Date, error) {
	for _, candidate := range []struct {
		field string
		value string
	}{
		{"date", raw.Date},
		{"end_date", raw.EndDate},
		{"start_date", raw.StartDate},
	} {
		if value := normalize(candidate.value); value != "" {
			return parseDateParam(candidate.field, value)
		}
	}
	return today, nil
}

func resolvePage(policy Policy, raw RawParams) (pagination.Params, error) {
	if !policy.Paged {
		return pagination.Params{Limit: policy.RowLimit}, nil
	}
	limit, err := parseCount("limit", raw.Limit)
	if err != nil {
		return pagination.Params{}, err
	}
	offset, err := parseCount("offset", raw.Offset)
	if err != nil {
		return pagination.Params{}, err
	}
	page := pagination.Params{Limit: limit, Offset: offset}.Normalize()
	if page.Limit > policy.RowLimit {
		page.Limit = policy.RowLimit
	}
	return page, nil
}

func parseDateParam(field, value string) (Date, error) {
	parsed, err := ParseDate(value)
	if err != nil {
		return Date{}, pkgerrors.InvalidParameter(field, field+" must be a date in YYYY-MM-DD format")
	}
	return parsed, nil
}

// parseID treats empty, "null" and "undefined" as absent. Zero is a real id.
func parseID(field, value string) (*int64, error) {
	value = normalize(value)
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return nil, pkgerrors.InvalidParameter(field, field+" must be a non-negative integer")
	}
	return &id, nil
}

func parseCount(field, value string) (int, error) {
	value = normalize(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, pkgerrors.InvalidParameter(field, field+" must be a non-negative integer")
	}
	return n, nil
}

func normalize(value string) string {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "null", "undefined":
		return ""
	}
	return value
}
