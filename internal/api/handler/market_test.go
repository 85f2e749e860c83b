package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DuelitDev/quant-sim/internal/api"
	"github.com/DuelitDev/quant-sim/internal/service"
	"github.com/DuelitDev/quant-sim/pkg/models"
)

func TestHandleKospi(t *testing.T) {
	t.Run("returns index series", func(t *testing.T) {
		vol := int64(1_000_000_000)
		market := new(mockMarket)
		market.On("IndexPrices", mock.Anything, "20240101", "20240131").
			Return(&models.IndexSeries{
				Name: "KOSPI",
				Code: "1001",
				Bars: []models.IndexBar{
					{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Close: 2655.28, Volume: &vol},
					{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Close: 2661.95, Volume: nil},
				},
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/market/kospi?start_date=20240101&end_date=20240131", nil)
		newRouter(market).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body api.IndexResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "KOSPI", body.IndexName)
		assert.Equal(t, "1001", body.IndexCode)
		require.Len(t, body.Prices, 2)
		assert.Equal(t, 2655.28, body.Prices[0].Close)
		require.NotNil(t, body.Prices[0].Volume)
		assert.Nil(t, body.Prices[1].Volume)
	})

	t.Run("malformed date is rejected before any provider call", func(t *testing.T) {
		market := new(mockMarket)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/market/kospi?start_date=bad&end_date=20240131", nil)
		newRouter(market).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		market.AssertNotCalled(t, "IndexPrices", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleStatus(t *testing.T) {
	seoul := service.Seoul()

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "wednesday mid-session is open",
			now:  time.Date(2024, 5, 1, 10, 0, 0, 0, seoul), // Wednesday
			want: "OPEN",
		},
		{
			name: "saturday mid-morning is closed",
			now:  time.Date(2024, 5, 4, 10, 0, 0, 0, seoul), // Saturday
			want: "CLOSED",
		},
		{
			name: "sunday is closed",
			now:  time.Date(2024, 5, 5, 10, 0, 0, 0, seoul),
			want: "CLOSED",
		},
		{
			name: "weekday before the bell is closed",
			now:  time.Date(2024, 5, 1, 8, 59, 59, 0, seoul),
			want: "CLOSED",
		},
		{
			name: "opening second is open",
			now:  time.Date(2024, 5, 1, 9, 0, 0, 0, seoul),
			want: "OPEN",
		},
		{
			name: "closing second is open",
			now:  time.Date(2024, 5, 1, 15, 30, 0, 0, seoul),
			want: "OPEN",
		},
		{
			name: "just after close is closed",
			now:  time.Date(2024, 5, 1, 15, 30, 1, 0, seoul),
			want: "CLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMarketHandler(new(mockMarket))
			h.now = func() time.Time { return tt.now }

			rec := httptest.NewRecorder()
			h.HandleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/market/status", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			var body api.MarketStatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Status)
			assert.Equal(t, "09:00", body.MarketOpen)
			assert.Equal(t, "15:30", body.MarketClose)
			assert.Equal(t, "Asia/Seoul", body.Timezone)
			assert.Equal(t, tt.now.Format("2006-01-02 15:04:05"), body.CurrentTime)
		})
	}
}
