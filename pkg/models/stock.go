package models

import "time"

// StockInfo identifies a single listed security.
type StockInfo struct {
	Code string // 6-digit KRX short code, e.g. "005930"
	Name string // display name, e.g. "삼성전자"
}

// PriceBar is one daily OHLCV bar for a stock. KRX quotes stocks in whole
// KRW, so price fields are integers.
type PriceBar struct {
	Date   time.Time
	Open   int64
	High   int64
	Low    int64
	Close  int64
	Volume int64
}

// PriceSeries holds the daily bars for one stock over a requested range,
// ascending by date with one bar per trading day.
type PriceSeries struct {
	Code string
	Name string
	Bars []PriceBar
}

// StockCatalog is a snapshot of every ticker listed on the market at query
// time. Count always equals len(Stocks).
type StockCatalog struct {
	Count  int
	Stocks []StockInfo
}
