package domain_money

import "github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"

var (
	ErrUnsupportedCurrency = fault.New(fault.Validation, "money: currency must be USD or CAD")
	ErrNonPositiveAmount   = fault.New(fault.Validation, "money: amount must be greater than zero")
	ErrCurrencyMismatch    = fault.New(fault.IllegalOperation, "money: currencies differ")
)
