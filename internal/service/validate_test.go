package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DuelitDev/quant-sim/pkg/models"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain valid date", "20230101", true},
		{"end of month", "20240131", true},
		{"leap day on leap year", "20240229", true},
		{"leap day on non-leap year", "20230229", false},
		{"month 13", "20231301", false},
		{"day zero", "20230100", false},
		{"day 32", "20230132", false},
		{"dashed format", "2023-01-01", false},
		{"too short", "2023011", false},
		{"too long", "202301011", false},
		{"non-numeric", "2023010a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.input))
		})
	}
}

func TestValidStockCode(t *testing.T) {
	t.Run("resolvable code is valid", func(t *testing.T) {
		source := new(mockSource)
		source.On("Resolve", mock.Anything, "005930").
			Return(models.Security{Code: "005930", ISIN: "KR7005930003", Name: "삼성전자"}, nil)

		svc := New(source)
		assert.True(t, svc.ValidStockCode(context.Background(), "005930"))
		source.AssertExpectations(t)
	})

	t.Run("unknown code is invalid", func(t *testing.T) {
		source := new(mockSource)
		source.On("Resolve", mock.Anything, "999999").
			Return(models.Security{}, errors.New("no issue matches code 999999"))

		svc := New(source)
		assert.False(t, svc.ValidStockCode(context.Background(), "999999"))
	})

	t.Run("short code is invalid", func(t *testing.T) {
		source := new(mockSource)
		source.On("Resolve", mock.Anything, "5930").
			Return(models.Security{}, errors.New("no issue matches code 5930"))

		svc := New(source)
		assert.False(t, svc.ValidStockCode(context.Background(), "5930"))
	})

	t.Run("empty resolved name is invalid", func(t *testing.T) {
		source := new(mockSource)
		source.On("Resolve", mock.Anything, "005930").
			Return(models.Security{Code: "005930"}, nil)

		svc := New(source)
		assert.False(t, svc.ValidStockCode(context.Background(), "005930"))
	})
}
