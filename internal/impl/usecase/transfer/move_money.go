package impl_transfer

import (
	"context"

	domain_account "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/account"
	domain_money "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/money"
	domain_transfer "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_transfer "github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
)

// MoveMoneyUsecaseImpl orchestrates one transfer: read both accounts, run
// the pure domain computation, commit the movement, shape the result. It is
// the sole recovery boundary: no failure escapes as a returned error.
type MoveMoneyUsecaseImpl struct {
	store port_persistence.Store
	clock port_platform.Clock
	ids   port_platform.IDGenerator
}

func NewMoveMoneyUsecaseImpl(
	store port_persistence.Store,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
) *MoveMoneyUsecaseImpl {
	return &MoveMoneyUsecaseImpl{
		store: store,
		clock: clock,
		ids:   ids,
	}
}

func (u *MoveMoneyUsecaseImpl) Execute(ctx context.Context, in port_transfer.MoveMoneyInput) port_transfer.MoveMoneyResult {
	result, err := u.execute(ctx, in)
	if err != nil {
		return port_transfer.MoveMoneyResult{
			Status:  port_transfer.StatusError,
			Request: in,
			Err:     err,
		}
	}

	return result
}

func (u *MoveMoneyUsecaseImpl) execute(ctx context.Context, in port_transfer.MoveMoneyInput) (port_transfer.MoveMoneyResult, error) {
	from, err := u.store.GetAccount(ctx, in.FromAccount)
	if err != nil {
		return port_transfer.MoveMoneyResult{}, err
	}

	to, err := u.store.GetAccount(ctx, in.ToAccount)
	if err != nil {
		return port_transfer.MoveMoneyResult{}, err
	}

	amount, err := domain_money.NewAmount(in.Amount, in.Currency)
	if err != nil {
		return port_transfer.MoveMoneyResult{}, err
	}

	movement, err := domain_transfer.MoveMoney(domain_transfer.MoveMoneyParams{
		TransferID:     u.ids.NewUUID(),
		TransferNumber: in.TransferNumber,
		From:           from,
		To:             to,
		Amount:         amount,
		Now:            u.clock.Now(),
	})
	if err != nil {
		return port_transfer.MoveMoneyResult{}, err
	}

	if err := u.store.Commit(ctx, movement.Transfer, movement.Debited, movement.Credited); err != nil {
		return port_transfer.MoveMoneyResult{}, err
	}

	return port_transfer.MoveMoneyResult{
		Status:                port_transfer.StatusDone,
		Transferred:           amountView(amount),
		DebitedAccount:        movement.Debited.Number(),
		DebitedAccountAmount:  balanceView(movement.Debited),
		CreditedAccount:       movement.Credited.Number(),
		CreditedAccountAmount: balanceView(movement.Credited),
	}, nil
}

func amountView(a domain_money.Amount) port_transfer.AmountView {
	return port_transfer.AmountView{Value: a.Value(), Currency: string(a.Currency())}
}

func balanceView(a domain_account.Account) port_transfer.AmountView {
	return port_transfer.AmountView{Value: a.Balance().Value(), Currency: string(a.Balance().Currency())}
}
