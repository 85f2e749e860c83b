package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DuelitDev/quant-sim/internal/api"
	"github.com/DuelitDev/quant-sim/internal/service"
)

// Trading session bounds in exchange-local time. The open/closed rule is
// naive: it knows weekdays and the session window, not public holidays.
const (
	marketOpenHour    = 9
	marketOpenMinute  = 0
	marketCloseHour   = 15
	marketCloseMinute = 30

	statusOpen   = "OPEN"
	statusClosed = "CLOSED"
)

// MarketHandler handles HTTP requests for index data and market status.
type MarketHandler struct {
	market MarketData
	logger zerolog.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(market MarketData) *MarketHandler {
	return &MarketHandler{
		market: market,
		logger: log.With().Str("component", "market_handler").Logger(),
		loc:    service.Seoul(),
		now:    time.Now,
	}
}

// HandleKospi handles GET /api/market/kospi.
func (h *MarketHandler) HandleKospi(w http.ResponseWriter, r *http.Request) {
	start, end, ok := requireDateRange(w, r)
	if !ok {
		return
	}

	series, err := h.market.IndexPrices(r.Context(), start, end)
	if err != nil {
		h.logger.Error().Err(err).Msg("index prices failed")
		sendErrorResponse(w, err.Error(), statusFromError(err))
		return
	}

	response := api.IndexResponse{
		IndexName: series.Name,
		IndexCode: series.Code,
		Prices:    make([]api.IndexPriceEntry, 0, len(series.Bars)),
	}
	for _, bar := range series.Bars {
		response.Prices = append(response.Prices, api.IndexPriceEntry{
			Date:   bar.Date.Format("2006-01-02"),
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	sendJSONResponse(w, http.StatusOK, response)
}

// HandleStatus handles GET /api/market/status. The status is derived from
// wall-clock time alone; no provider call is involved.
func (h *MarketHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	now := h.now().In(h.loc)

	status := statusClosed
	if marketOpenNow(now) {
		status = statusOpen
	}

	sendJSONResponse(w, http.StatusOK, api.MarketStatusResponse{
		Status:      status,
		CurrentTime: now.Format("2006-01-02 15:04:05"),
		MarketOpen:  "09:00",
		MarketClose: "15:30",
		Timezone:    service.TimezoneName,
	})
}

// marketOpenNow reports whether now falls inside the trading session:
// a Monday-Friday calendar day with the time inside the inclusive
// 09:00:00-15:30:00 window.
func marketOpenNow(now time.Time) bool {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	sessionOpen := time.Date(now.Year(), now.Month(), now.Day(),
		marketOpenHour, marketOpenMinute, 0, 0, now.Location())
	sessionClose := time.Date(now.Year(), now.Month(), now.Day(),
		marketCloseHour, marketCloseMinute, 0, 0, now.Location())

	return !now.Before(sessionOpen) && !now.After(sessionClose)
}
