package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"77,000", 77000, false},
		{"2,655.28", 2655.28, false},
		{"0", 0, false},
		{" 1,234 ", 1234, false},
		{"", 0, true},
		{"-", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseNumber(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseCount(t *testing.T) {
	got, err := parseCount("15,000,000")
	require.NoError(t, err)
	assert.Equal(t, int64(15000000), got)

	_, err = parseCount("1,234.5")
	assert.Error(t, err, "fractional counts are malformed")
}

func TestParseTradeDate(t *testing.T) {
	got, err := parseTradeDate("2024/01/02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = parseTradeDate("20240102")
	assert.Error(t, err)
}
