package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/agentdeck/agentdeck/console-gateway/internal/simstore"
	"github.com/agentdeck/agentdeck/console-gateway/internal/transport"
	"github.com/rs/zerolog/log"
)

// apiResponse is the uniform envelope the console frontend unwraps:
// code 0 means success, anything else is a business failure.
type apiResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

func respondData(w http.ResponseWriter, data any) {
	writeEnvelope(w, 0, "success", data)
}

func respondFail(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, code, message, nil)
}

// respondErr maps gateway errors onto envelope codes. Handled failures keep
// HTTP 200 — the frontend reads the envelope code, not the status line.
func respondErr(w http.ResponseWriter, err error) {
	var notFound *simstore.ErrNotFound
	if errors.As(err, &notFound) {
		respondFail(w, http.StatusNotFound, notFound.Error())
		return
	}
	var upstream *transport.Error
	if errors.As(err, &upstream) {
		switch upstream.Kind {
		case transport.KindBusiness:
			respondFail(w, upstream.Code, upstream.Message)
		default:
			respondFail(w, http.StatusBadGateway, upstream.Message)
		}
		return
	}
	respondFail(w, http.StatusInternalServerError, "internal server error: "+err.Error())
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := apiResponse{
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("encode response envelope")
	}
}
