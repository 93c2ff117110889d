package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/salesdash-backend/pkg/errors"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/types"
)

// WriteSuccess writes data as a successful envelope without a count.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteEnvelope(w, http.StatusOK, types.Envelope{Success: true, Data: data})
}

// WriteEnvelope writes a fully built envelope with status.
func WriteEnvelope(w http.ResponseWriter, status int, env types.Envelope) {
	writeJSON(w, status, env)
}

// WriteError maps err onto the failure envelope and logs it once with its dump.
// message is safe to show end users; error is a diagnostic.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeInvalidParameter, pkgerrors.CodeNotFound:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	payload := types.Envelope{
		Success: false,
		Data:    nil,
		Message: msg,
		Error:   typed.Error(),
		Code:    string(typed.Code()),
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Details = details
		}
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, pkgerrors.Dump(err).Fields())
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, "request.rejected")
		}
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
