package api

// StockEntry is one ticker in the stock list response.
type StockEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// StockListResponse is the body of GET /api/stocks/list.
type StockListResponse struct {
	Count  int          `json:"count"`
	Stocks []StockEntry `json:"stocks"`
}

// PriceEntry is one daily OHLCV bar in a stock price response. Dates render
// as YYYY-MM-DD.
type PriceEntry struct {
	Date   string `json:"date"`
	Open   int64  `json:"open"`
	High   int64  `json:"high"`
	Low    int64  `json:"low"`
	Close  int64  `json:"close"`
	Volume int64  `json:"volume"`
}

// StockPriceResponse is the body of GET /api/stocks/{code}/price.
type StockPriceResponse struct {
	Code   string       `json:"code"`
	Name   string       `json:"name"`
	Prices []PriceEntry `json:"prices"`
}

// IndexPriceEntry is one daily index bar. Volume is null for series the
// provider ships without volume.
type IndexPriceEntry struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume *int64  `json:"volume"`
}

// IndexResponse is the body of GET /api/market/kospi.
type IndexResponse struct {
	IndexName string            `json:"index_name"`
	IndexCode string            `json:"index_code"`
	Prices    []IndexPriceEntry `json:"prices"`
}

// MarketStatusResponse is the body of GET /api/market/status.
type MarketStatusResponse struct {
	Status      string `json:"status"`
	CurrentTime string `json:"current_time"`
	MarketOpen  string `json:"market_open"`
	MarketClose string `json:"market_close"`
	Timezone    string `json:"timezone"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ErrorResponse represents an error response sent to the client
type ErrorResponse struct {
	Error string `json:"error"`
}
