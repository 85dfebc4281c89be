package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultSymbol = "$"
	DefaultLocale = "en-US"
)

type Formatter struct {
	symbol  string
	printer *message.Printer
}

func New(symbol, locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders amount with the currency symbol and two fraction digits, e.g.
// "$15.00". Negative amounts put the sign before the symbol: "-$2.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	amount = amount.Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	return sign + f.symbol + f.printer.Sprintf("%.2f", amount.InexactFloat64())
}
