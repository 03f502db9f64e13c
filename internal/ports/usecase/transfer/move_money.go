package port_transfer

import (
	"context"

	"github.com/shopspring/decimal"
)

type MoveMoneyInput struct {
	TransferNumber string
	FromAccount    string
	ToAccount      string
	Amount         decimal.Decimal
	Currency       string
}

// AmountView is a plain value/currency pair for result shaping.
type AmountView struct {
	Value    decimal.Decimal
	Currency string
}

// MoveMoneyResult is status-tagged rather than an error return: the use case
// is the recovery boundary, so every failure comes back as an ERROR result
// echoing the original request.
type MoveMoneyResult struct {
	Status Status

	Transferred           AmountView
	DebitedAccount        string
	DebitedAccountAmount  AmountView
	CreditedAccount       string
	CreditedAccountAmount AmountView

	Request MoveMoneyInput
	Err     error
}

type MoveMoneyUseCase interface {
	Execute(ctx context.Context, input MoveMoneyInput) MoveMoneyResult
}
