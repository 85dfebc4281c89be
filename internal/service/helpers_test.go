package service

import (
	"testing"
	"time"

	"github.com/ibeloyar/cupcake/pgk/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var referenceTime = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestPricing(t *testing.T, now time.Time) *Pricing {
	t.Helper()

	f, err := currency.New(currency.DefaultSymbol, currency.DefaultLocale)
	require.NoError(t, err)

	return NewPricing(fixedClock(now), decimal.NewFromFloat(2.00), decimal.NewFromFloat(3.00), f)
}
