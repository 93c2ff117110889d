package reports

import (
	"net/http"

	"github.com/angelmondragon/salesdash-backend/api/responses"
	"github.com/angelmondragon/salesdash-backend/api/validators"
	"github.com/angelmondragon/salesdash-backend/internal/reports"
	"github.com/angelmondragon/salesdash-backend/pkg/enums"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/types"
)

// Report serves one report kind. Query parameters are decoded and validated
// here; defaulting and clamping happen in the service.
func Report(service reports.Service, kind enums.ReportKind, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithReport(ctx, kind.String())
		}

		var raw reports.RawParams
		if err := validators.DecodeQuery(r, &raw); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Run(ctx, kind, raw)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteEnvelope(w, http.StatusOK, envelopeFor(result))
	}
}

func envelopeFor(result *reports.Result) types.Envelope {
	env := types.Envelope{
		Success:   true,
		Count:     result.Count,
		Data:      result.Data,
		Truncated: result.Truncated,
	}
	if !result.Start.IsZero() {
		env.Range = &types.DateRange{StartDate: result.Start.String(), EndDate: result.End.String()}
	}
	if result.Page != nil {
		env.Page = result.Page
	}
	return env
}
