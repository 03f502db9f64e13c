package domain_transfer

import (
	"time"

	domain_account "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/account"
	domain_money "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/money"
	"github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"
	"github.com/google/uuid"
)

type MoveMoneyParams struct {
	TransferID     uuid.UUID
	TransferNumber string
	From           domain_account.Account
	To             domain_account.Account
	Amount         domain_money.Amount
	Now            time.Time
}

// Movement bundles the outcome of one transfer: both post-transfer account
// snapshots plus the transfer record linking them. Nothing is persisted; the
// caller hands the bundle to the store's commit.
type Movement struct {
	Debited  domain_account.Account
	Credited domain_account.Account
	Transfer *Transfer
}

// MoveMoney debits p.From and credits p.To by p.Amount. It is pure: no I/O,
// no shared state, safe to call concurrently without coordination. Any
// entity-level failure surfaces as a single illegal-operation fault wrapping
// the original cause.
func MoveMoney(p MoveMoneyParams) (Movement, error) {
	movement, err := move(p)
	if err != nil {
		return Movement{}, fault.Wrapf(fault.IllegalOperation, err,
			"transfer %s: account %s cannot be debited of %s in favor of account %s",
			p.TransferNumber, p.From.Number(), p.Amount, p.To.Number())
	}

	return movement, nil
}

func move(p MoveMoneyParams) (Movement, error) {
	debit, err := domain_account.NewDebit(p.From.Number(), p.Amount)
	if err != nil {
		return Movement{}, err
	}

	credit, err := domain_account.NewCredit(p.To.Number(), p.Amount)
	if err != nil {
		return Movement{}, err
	}

	debited, err := p.From.Debit(debit)
	if err != nil {
		return Movement{}, err
	}

	credited, err := p.To.Credit(credit)
	if err != nil {
		return Movement{}, err
	}

	transfer, err := New(NewParams{
		TransferID: p.TransferID,
		Number:     p.TransferNumber,
		Debit:      debit,
		Credit:     credit,
		Now:        p.Now,
	})
	if err != nil {
		return Movement{}, err
	}

	return Movement{Debited: debited, Credited: credited, Transfer: transfer}, nil
}
