package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/DuelitDev/quant-sim/internal/api"
	"github.com/DuelitDev/quant-sim/internal/service"
)

// sendJSONResponse sends a JSON response to the client
func sendJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding JSON response")
	}
}

// sendErrorResponse sends an error response to the client
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSONResponse(w, statusCode, api.ErrorResponse{Error: message})
}

// statusFromError maps facade error kinds onto HTTP status codes.
func statusFromError(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound, service.KindNoData:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// requireDateRange extracts and validates the start_date/end_date query
// parameters. On failure it writes a 400 naming the offending field and
// reports ok=false.
func requireDateRange(w http.ResponseWriter, r *http.Request) (start, end string, ok bool) {
	start = r.URL.Query().Get("start_date")
	if !service.ValidDate(start) {
		sendErrorResponse(w, "invalid start_date, expected YYYYMMDD", http.StatusBadRequest)
		return "", "", false
	}
	end = r.URL.Query().Get("end_date")
	if !service.ValidDate(end) {
		sendErrorResponse(w, "invalid end_date, expected YYYYMMDD", http.StatusBadRequest)
		return "", "", false
	}
	return start, end, true
}
