package booking

import (
	"testing"

	"washly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWashPrice(t *testing.T) {
	tests := []struct {
		washType models.WashType
		want     int
	}{
		{models.WashExterior, 2500},
		{models.WashInterior, 3000},
		{models.WashComplete, 5000},
	}
	for _, tc := range tests {
		got, err := WashPrice(tc.washType)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "wash type %s", tc.washType)
	}

	_, err := WashPrice(models.WashType("premium"))
	assert.Error(t, err)
}

func TestQuotePriceEveningSurcharge(t *testing.T) {
	base, err := QuotePrice(models.WashComplete, "morning")
	require.NoError(t, err)
	assert.Equal(t, 5000, base)

	evening, err := QuotePrice(models.WashComplete, "evening")
	require.NoError(t, err)
	assert.Equal(t, 5000+EveningSurcharge, evening)
}

func TestRechargeCommission(t *testing.T) {
	tests := []struct {
		name         string
		amount       int
		method       string
		wantRate     float64
		wantCredited int
	}{
		{"cib half percent", 10000, "cib", 0.005, 9950},
		{"edahabia one percent", 10000, "edahabia", 0.01, 9900},
		{"flexy two percent", 5000, "flexy", 0.02, 4900},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := CommissionRate(tc.method)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRate, rate)
			assert.Equal(t, tc.wantCredited, CreditedAmount(tc.amount, rate))
		})
	}

	_, err := CommissionRate("paypal")
	assert.Error(t, err)
}
