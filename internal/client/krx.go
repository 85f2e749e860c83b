package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/DuelitDev/quant-sim/pkg/models"
)

const (
	// DefaultBaseURL is the public KRX market-data gateway.
	DefaultBaseURL = "http://data.krx.co.kr"

	gatewayPath = "/comm/bldAttendant/getJsonData.cmd"

	// KRX screen ids ("bld" values) behind the gateway.
	bldListings   = "dbms/MDC/STAT/standard/MDCSTAT01501" // all-issues daily snapshot
	bldFinder     = "dbms/comm/finder/finder_stkisu"      // issue search by code/name
	bldStockOHLCV = "dbms/MDC/STAT/standard/MDCSTAT01701" // per-issue daily OHLCV
	bldIndexOHLCV = "dbms/MDC/STAT/standard/MDCSTAT00301" // per-index daily close/volume

	// marketKOSPI is the gateway's market id for the KOSPI board.
	marketKOSPI = "STK"

	maxRetryElapsed = 15 * time.Second
)

// KRX is a client for the KRX JSON gateway. It owns outbound politeness
// (rate limiting), timeouts and bounded retries; callers get exactly one
// logical attempt per method call.
type KRX struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryBudget time.Duration
	logger      zerolog.Logger
}

// NewKRX creates a KRX gateway client. An empty baseURL selects the public
// gateway; rps bounds outbound requests per second.
func NewKRX(baseURL string, timeout time.Duration, rps int) *KRX {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 1
	}
	return &KRX{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:     rate.NewLimiter(rate.Every(time.Second), rps),
		retryBudget: maxRetryElapsed,
		logger:      log.With().Str("component", "krx_client").Logger(),
	}
}

// listingRow is the gateway's all-issues snapshot row. Only the short code is
// consumed; names are resolved per issue through the finder screen.
type listingRow struct {
	ShortCode string `json:"ISU_SRT_CD"`
	Name      string `json:"ISU_ABBRV"`
}

type listingsPayload struct {
	Rows []listingRow `json:"OutBlock_1"`
}

// finderRow is one match from the issue finder screen.
type finderRow struct {
	FullCode  string `json:"full_code"`
	ShortCode string `json:"short_code"`
	Name      string `json:"codeName"`
}

type finderPayload struct {
	Rows []finderRow `json:"block1"`
}

// ohlcvRow carries one daily stock bar. The gateway formats every number as
// a comma-grouped string and dates as YYYY/MM/DD.
type ohlcvRow struct {
	TradeDate string `json:"TRD_DD"`
	Open      string `json:"TDD_OPNPRC"`
	High      string `json:"TDD_HGPRC"`
	Low       string `json:"TDD_LWPRC"`
	Close     string `json:"TDD_CLSPRC"`
	Volume    string `json:"ACC_TRDVOL"`
}

type ohlcvPayload struct {
	Rows []ohlcvRow `json:"output"`
}

type indexRow struct {
	TradeDate string `json:"TRD_DD"`
	Close     string `json:"CLSPRC_IDX"`
	Volume    string `json:"ACC_TRDVOL"`
}

type indexPayload struct {
	Rows []indexRow `json:"output"`
}

// Listings returns the short codes of every KOSPI issue trading on the given
// date (YYYYMMDD), in the gateway's native order.
func (c *KRX) Listings(ctx context.Context, date string) ([]string, error) {
	form := url.Values{}
	form.Set("bld", bldListings)
	form.Set("mktId", marketKOSPI)
	form.Set("trdDd", date)

	var payload listingsPayload
	if err := c.getJSON(ctx, form, &payload); err != nil {
		return nil, fmt.Errorf("fetching listings for %s: %w", date, err)
	}

	codes := make([]string, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		if row.ShortCode == "" {
			continue
		}
		codes = append(codes, row.ShortCode)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("gateway returned no listings for %s", date)
	}
	return codes, nil
}

// Resolve looks up a 6-digit short code through the issue finder and returns
// the matching security. Codes the finder cannot match exactly are errors.
func (c *KRX) Resolve(ctx context.Context, code string) (models.Security, error) {
	form := url.Values{}
	form.Set("bld", bldFinder)
	form.Set("mktsel", "ALL")
	form.Set("searchText", code)

	var payload finderPayload
	if err := c.getJSON(ctx, form, &payload); err != nil {
		return models.Security{}, fmt.Errorf("resolving code %s: %w", code, err)
	}

	for _, row := range payload.Rows {
		if row.ShortCode != code {
			continue
		}
		if row.Name == "" {
			break
		}
		return models.Security{
			Code: row.ShortCode,
			ISIN: row.FullCode,
			Name: row.Name,
		}, nil
	}
	return models.Security{}, fmt.Errorf("no issue matches code %s", code)
}

// DailyOHLCV returns the daily bars for one issue (keyed by ISIN) over the
// inclusive [start, end] range, in the gateway's native (newest-first) order.
// An empty range yields an empty slice, not an error.
func (c *KRX) DailyOHLCV(ctx context.Context, isin, start, end string) ([]models.OHLCVRow, error) {
	form := url.Values{}
	form.Set("bld", bldStockOHLCV)
	form.Set("isuCd", isin)
	form.Set("strtDd", start)
	form.Set("endDd", end)
	form.Set("adjStkPrc", "1")

	var payload ohlcvPayload
	if err := c.getJSON(ctx, form, &payload); err != nil {
		return nil, fmt.Errorf("fetching OHLCV for %s: %w", isin, err)
	}

	rows := make([]models.OHLCVRow, 0, len(payload.Rows))
	for _, raw := range payload.Rows {
		date, err := parseTradeDate(raw.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", raw.TradeDate, err)
		}
		open, err := parseNumber(raw.Open)
		if err != nil {
			return nil, fmt.Errorf("open on %s: %w", raw.TradeDate, err)
		}
		high, err := parseNumber(raw.High)
		if err != nil {
			return nil, fmt.Errorf("high on %s: %w", raw.TradeDate, err)
		}
		low, err := parseNumber(raw.Low)
		if err != nil {
			return nil, fmt.Errorf("low on %s: %w", raw.TradeDate, err)
		}
		cls, err := parseNumber(raw.Close)
		if err != nil {
			return nil, fmt.Errorf("close on %s: %w", raw.TradeDate, err)
		}
		volume, err := parseCount(raw.Volume)
		if err != nil {
			return nil, fmt.Errorf("volume on %s: %w", raw.TradeDate, err)
		}
		rows = append(rows, models.OHLCVRow{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  cls,
			Volume: volume,
		})
	}
	return rows, nil
}

// IndexOHLCV returns the daily close/volume rows for one index code (e.g.
// "1001" for KOSPI) over the inclusive [start, end] range, newest first.
func (c *KRX) IndexOHLCV(ctx context.Context, indexCode, start, end string) ([]models.IndexRow, error) {
	if len(indexCode) < 2 {
		return nil, fmt.Errorf("malformed index code %q", indexCode)
	}

	// The gateway splits the 4-digit index code into a group digit and a
	// 3-digit series id: 1001 -> indIdx=1, indIdx2=001.
	form := url.Values{}
	form.Set("bld", bldIndexOHLCV)
	form.Set("indIdx", indexCode[:1])
	form.Set("indIdx2", indexCode[1:])
	form.Set("strtDd", start)
	form.Set("endDd", end)

	var payload indexPayload
	if err := c.getJSON(ctx, form, &payload); err != nil {
		return nil, fmt.Errorf("fetching index %s: %w", indexCode, err)
	}

	rows := make([]models.IndexRow, 0, len(payload.Rows))
	for _, raw := range payload.Rows {
		date, err := parseTradeDate(raw.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", raw.TradeDate, err)
		}
		cls, err := parseNumber(raw.Close)
		if err != nil {
			return nil, fmt.Errorf("close on %s: %w", raw.TradeDate, err)
		}
		row := models.IndexRow{Date: date, Close: cls}
		if strings.TrimSpace(raw.Volume) != "" {
			volume, err := parseCount(raw.Volume)
			if err != nil {
				return nil, fmt.Errorf("volume on %s: %w", raw.TradeDate, err)
			}
			row.Volume = &volume
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// getJSON performs one rate-limited gateway call with bounded retries on
// transport errors and non-200 responses, decoding the body into out.
func (c *KRX) getJSON(ctx context.Context, form url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := c.baseURL + gatewayPath

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
			strings.NewReader(form.Encode()))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		// The gateway rejects requests without a same-site referer.
		req.Header.Set("Referer", c.baseURL+"/contents")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("gateway request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("gateway returned status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading gateway response: %w", err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.retryBudget
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		c.logger.Error().Err(err).Str("bld", form.Get("bld")).Msg("gateway call failed")
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding gateway response: %w", err)
	}
	return nil
}
