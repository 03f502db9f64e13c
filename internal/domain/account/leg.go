package domain_account

import (
	domain_money "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/money"
)

// Debit describes the outgoing leg of a transfer: which account loses how
// much.
type Debit struct {
	number string
	amount domain_money.Amount
}

func NewDebit(number string, amount domain_money.Amount) (Debit, error) {
	if !numberPattern.MatchString(number) {
		return Debit{}, ErrInvalidNumber
	}

	return Debit{number: number, amount: amount}, nil
}

func (d Debit) Number() string { return d.number }

func (d Debit) Amount() domain_money.Amount { return d.amount }

// Credit describes the incoming leg of a transfer.
type Credit struct {
	number string
	amount domain_money.Amount
}

func NewCredit(number string, amount domain_money.Amount) (Credit, error) {
	if !numberPattern.MatchString(number) {
		return Credit{}, ErrInvalidNumber
	}

	return Credit{number: number, amount: amount}, nil
}

func (c Credit) Number() string { return c.number }

func (c Credit) Amount() domain_money.Amount { return c.amount }
