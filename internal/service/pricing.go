package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	pickupDateLayout   = "Mon Jan 2"
	pickupOptionsCount = 4
)

// Pricing computes order prices and the selectable pickup dates relative to now.
type Pricing struct {
	now              func() time.Time
	unitPrice        decimal.Decimal
	sameDaySurcharge decimal.Decimal
	formatter        PriceFormatter
}

func NewPricing(now func() time.Time, unitPrice, sameDaySurcharge decimal.Decimal, f PriceFormatter) *Pricing {
	if now == nil {
		now = time.Now
	}

	return &Pricing{
		now:              now,
		unitPrice:        unitPrice,
		sameDaySurcharge: sameDaySurcharge,
		formatter:        f,
	}
}

// PickupOptions returns labels for today and the three following days.
func (p *Pricing) PickupOptions() []string {
	today := p.now()

	options := make([]string, 0, pickupOptionsCount)
	for i := 0; i < pickupOptionsCount; i++ {
		options = append(options, today.AddDate(0, 0, i).Format(pickupDateLayout))
	}

	return options
}

// CalculatePrice returns the formatted price of quantity cupcakes. Picking up
// on the first option (today) adds the same day surcharge.
func (p *Pricing) CalculatePrice(quantity int, pickupDate string) string {
	price := p.unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	if p.PickupOptions()[0] == pickupDate {
		price = price.Add(p.sameDaySurcharge)
	}

	return p.formatter.Format(price)
}

func (p *Pricing) zeroPrice() string {
	return p.formatter.Format(decimal.Zero)
}
