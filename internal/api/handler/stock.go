package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DuelitDev/quant-sim/internal/api"
	"github.com/DuelitDev/quant-sim/pkg/models"
)

// MarketData is the slice of the facade the HTTP handlers consume.
type MarketData interface {
	StockList(ctx context.Context) (*models.StockCatalog, error)
	StockPrices(ctx context.Context, code, start, end string) (*models.PriceSeries, error)
	IndexPrices(ctx context.Context, start, end string) (*models.IndexSeries, error)
	ValidStockCode(ctx context.Context, code string) bool
}

// StockHandler handles HTTP requests for stock data
type StockHandler struct {
	market MarketData
	logger zerolog.Logger
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(market MarketData) *StockHandler {
	return &StockHandler{
		market: market,
		logger: log.With().Str("component", "stock_handler").Logger(),
	}
}

// HandleList handles GET /api/stocks/list.
func (h *StockHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.market.StockList(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("stock list failed")
		sendErrorResponse(w, err.Error(), statusFromError(err))
		return
	}

	response := api.StockListResponse{
		Count:  catalog.Count,
		Stocks: make([]api.StockEntry, 0, len(catalog.Stocks)),
	}
	for _, s := range catalog.Stocks {
		response.Stocks = append(response.Stocks, api.StockEntry{Code: s.Code, Name: s.Name})
	}

	sendJSONResponse(w, http.StatusOK, response)
}

// HandlePrices handles GET /api/stocks/{code}/price.
func (h *StockHandler) HandlePrices(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	start, end, ok := requireDateRange(w, r)
	if !ok {
		return
	}

	// Unknown codes are rejected before any OHLCV fetch is attempted.
	if !h.market.ValidStockCode(r.Context(), code) {
		sendErrorResponse(w, fmt.Sprintf("stock code %q not found", code), http.StatusNotFound)
		return
	}

	series, err := h.market.StockPrices(r.Context(), code, start, end)
	if err != nil {
		h.logger.Error().Err(err).Str("code", code).Msg("stock prices failed")
		sendErrorResponse(w, err.Error(), statusFromError(err))
		return
	}

	response := api.StockPriceResponse{
		Code:   series.Code,
		Name:   series.Name,
		Prices: make([]api.PriceEntry, 0, len(series.Bars)),
	}
	for _, bar := range series.Bars {
		response.Prices = append(response.Prices, api.PriceEntry{
			Date:   bar.Date.Format("2006-01-02"),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	sendJSONResponse(w, http.StatusOK, response)
}
