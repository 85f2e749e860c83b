package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DuelitDev/quant-sim/pkg/models"
)

// Fixed target index for the /api/market/kospi endpoint.
const (
	kospiIndexName = "KOSPI"
	kospiIndexCode = "1001"
)

// Operation names prefixed onto every facade error message.
const (
	opStockList   = "stock list query"
	opStockPrices = "stock price query"
	opIndexPrices = "index price query"
)

// DataSource is the slice of the KRX client the facade consumes. Tests
// substitute a mock; production wires *client.KRX.
type DataSource interface {
	Listings(ctx context.Context, date string) ([]string, error)
	Resolve(ctx context.Context, code string) (models.Security, error)
	DailyOHLCV(ctx context.Context, isin, start, end string) ([]models.OHLCVRow, error)
	IndexOHLCV(ctx context.Context, indexCode, start, end string) ([]models.IndexRow, error)
}

// MarketService is the query facade over the KRX data source. It holds no
// per-request state and is safe for concurrent use.
type MarketService struct {
	source DataSource
	logger zerolog.Logger
	now    func() time.Time
}

// New creates a MarketService backed by the given data source.
func New(source DataSource) *MarketService {
	return &MarketService{
		source: source,
		logger: log.With().Str("component", "market_service").Logger(),
		now:    time.Now,
	}
}

// StockList returns every KOSPI ticker listed today, resolving each display
// name individually. A failed name lookup skips that ticker; only a failed
// listing call aborts the whole query.
func (s *MarketService) StockList(ctx context.Context) (*models.StockCatalog, error) {
	today := s.now().In(Seoul()).Format(dateLayout)

	codes, err := s.source.Listings(ctx, today)
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Op: opStockList, Err: err}
	}

	stocks := make([]models.StockInfo, 0, len(codes))
	for _, code := range codes {
		sec, err := s.source.Resolve(ctx, code)
		if err != nil {
			s.logger.Warn().Str("code", code).Err(err).Msg("skipping ticker, name lookup failed")
			continue
		}
		stocks = append(stocks, models.StockInfo{Code: code, Name: sec.Name})
	}

	return &models.StockCatalog{Count: len(stocks), Stocks: stocks}, nil
}

// StockPrices returns the daily OHLCV bars for one stock over the inclusive
// [start, end] range, ascending by date. The code must resolve to a listed
// issue and the range must contain at least one trading day.
func (s *MarketService) StockPrices(ctx context.Context, code, start, end string) (*models.PriceSeries, error) {
	sec, err := s.source.Resolve(ctx, code)
	if err != nil {
		return nil, &Error{
			Kind: KindNotFound,
			Op:   opStockPrices,
			Err:  fmt.Errorf("stock code %s not found: %w", code, err),
		}
	}

	rows, err := s.source.DailyOHLCV(ctx, sec.ISIN, start, end)
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Op: opStockPrices, Err: err}
	}
	if len(rows) == 0 {
		return nil, &Error{
			Kind: KindNoData,
			Op:   opStockPrices,
			Err:  errors.New("no trading data in the requested range"),
		}
	}

	bars := make([]models.PriceBar, 0, len(rows))
	for _, row := range rows {
		// Adjusted provider rows can carry fractional prices; KRX quotes
		// whole KRW, so fractions are truncated, not rounded.
		bars = append(bars, models.PriceBar{
			Date:   row.Date,
			Open:   int64(row.Open),
			High:   int64(row.High),
			Low:    int64(row.Low),
			Close:  int64(row.Close),
			Volume: row.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	return &models.PriceSeries{Code: code, Name: sec.Name, Bars: bars}, nil
}

// IndexPrices returns the daily KOSPI index bars over the inclusive
// [start, end] range, ascending by date. Close values keep their fractional
// index points; volume passes through untouched and may be absent.
func (s *MarketService) IndexPrices(ctx context.Context, start, end string) (*models.IndexSeries, error) {
	rows, err := s.source.IndexOHLCV(ctx, kospiIndexCode, start, end)
	if err != nil {
		return nil, &Error{Kind: KindUpstream, Op: opIndexPrices, Err: err}
	}
	if len(rows) == 0 {
		return nil, &Error{
			Kind: KindNoData,
			Op:   opIndexPrices,
			Err:  errors.New("no index data in the requested range"),
		}
	}

	bars := make([]models.IndexBar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, models.IndexBar{
			Date:   row.Date,
			Close:  row.Close,
			Volume: row.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	return &models.IndexSeries{
		Name: kospiIndexName,
		Code: kospiIndexCode,
		Bars: bars,
	}, nil
}
