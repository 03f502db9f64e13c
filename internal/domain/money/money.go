package domain_money

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "USD"
	CAD Currency = "CAD"
)

// ParseCurrency normalizes and validates a currency code.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case USD:
		return USD, nil
	case CAD:
		return CAD, nil
	default:
		return "", ErrUnsupportedCurrency
	}
}

// Amount is a strictly positive quantity of one currency. The zero value is
// not a valid Amount; construct through NewAmount.
type Amount struct {
	value    decimal.Decimal
	currency Currency
}

func NewAmount(value decimal.Decimal, currency string) (Amount, error) {
	cur, err := ParseCurrency(currency)
	if err != nil {
		return Amount{}, err
	}

	if !value.IsPositive() {
		return Amount{}, ErrNonPositiveAmount
	}

	return Amount{value: value, currency: cur}, nil
}

func (a Amount) Value() decimal.Decimal { return a.value }

func (a Amount) Currency() Currency { return a.currency }

func (a Amount) Equal(other Amount) bool {
	return a.currency == other.currency && a.value.Equal(other.value)
}

func (a Amount) String() string {
	return a.value.String() + " " + string(a.currency)
}

// Balance is a signed quantity of one currency. Negative and zero values are
// legal: accounts can be overdrawn.
type Balance struct {
	value    decimal.Decimal
	currency Currency
}

func NewBalance(value decimal.Decimal, currency string) (Balance, error) {
	cur, err := ParseCurrency(currency)
	if err != nil {
		return Balance{}, err
	}

	return Balance{value: value, currency: cur}, nil
}

func (b Balance) Value() decimal.Decimal { return b.value }

func (b Balance) Currency() Currency { return b.currency }

func (b Balance) Add(a Amount) (Balance, error) {
	if b.currency != a.currency {
		return Balance{}, ErrCurrencyMismatch
	}

	return Balance{value: b.value.Add(a.value), currency: b.currency}, nil
}

func (b Balance) Sub(a Amount) (Balance, error) {
	if b.currency != a.currency {
		return Balance{}, ErrCurrencyMismatch
	}

	return Balance{value: b.value.Sub(a.value), currency: b.currency}, nil
}

func (b Balance) String() string {
	return b.value.String() + " " + string(b.currency)
}
