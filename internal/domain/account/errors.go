package domain_account

import "github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"

var (
	ErrInvalidNumber       = fault.New(fault.Validation, "account: number must be 12 digits between 1 and 9")
	ErrCurrencyMismatch    = fault.New(fault.IllegalOperation, "account: balance and operation currencies differ")
	ErrNumberMismatch      = fault.New(fault.IllegalOperation, "account: operation addressed to another account")
	ErrInsufficientBalance = fault.New(fault.IllegalOperation, "account: insufficient balance for debit")
)
