package models

import "time"

// Security is a resolved KRX issue: the 6-digit short code used in URLs and
// user input, the full ISIN the OHLCV screens key on, and the display name.
type Security struct {
	Code string
	ISIN string
	Name string
}

// OHLCVRow is one daily stock row as returned by the KRX gateway. Prices
// arrive as floats because adjusted series carry fractional values.
type OHLCVRow struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// IndexRow is one daily index row. Volume is nil when the screen ships the
// row without a volume column.
type IndexRow struct {
	Date   time.Time
	Close  float64
	Volume *int64
}
