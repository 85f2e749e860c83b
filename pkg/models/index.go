package models

import "time"

// IndexBar is one daily bar for a market index. Close keeps fractional index
// points; Volume is nil for series the provider ships without volume.
type IndexBar struct {
	Date   time.Time
	Close  float64
	Volume *int64
}

// IndexSeries holds the daily bars for one index over a requested range,
// ascending by date.
type IndexSeries struct {
	Name string // e.g. "KOSPI"
	Code string // KRX index code, e.g. "1001"
	Bars []IndexBar
}
