package domain_transfer

import "github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"

var (
	ErrInvalidTransferID = fault.New(fault.Validation, "transfer: invalid transfer id")
	ErrInvalidNumber     = fault.New(fault.Validation, "transfer: number must be 3 uppercase letters and 8 digits between 1 and 9")
	ErrAmountMismatch    = fault.New(fault.Validation, "transfer: debit and credit amounts differ")
	ErrSameAccount       = fault.New(fault.Validation, "transfer: debit and credit accounts coincide")
)
