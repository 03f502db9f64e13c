// Package impl_memory implements the persistence port as a lock-free
// in-memory store. The whole state lives in one atomic pointer to an
// immutable table pair; reads load a snapshot, commits swap in a fresh one.
package impl_memory

import (
	"context"
	"fmt"
	"sync/atomic"

	domain_account "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/account"
	domain_money "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/money"
	domain_transfer "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/transfer"
	port_persistence "github.com/MarcosLima-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/google/uuid"
)

// tables is never mutated after publication; commits build a new pair.
type tables struct {
	accounts  map[string]domain_account.Account
	transfers map[uuid.UUID]domain_transfer.Transfer
}

func (tb *tables) clone() *tables {
	next := &tables{
		accounts:  make(map[string]domain_account.Account, len(tb.accounts)+1),
		transfers: make(map[uuid.UUID]domain_transfer.Transfer, len(tb.transfers)+1),
	}

	for number, a := range tb.accounts {
		next.accounts[number] = a
	}

	for id, t := range tb.transfers {
		next.transfers[id] = t
	}

	return next
}

type Store struct {
	state atomic.Pointer[tables]
}

// NewStore seeds the account table; the store is the sole owner of all rows
// from here on.
func NewStore(accounts ...domain_account.Account) *Store {
	tb := &tables{
		accounts:  make(map[string]domain_account.Account, len(accounts)),
		transfers: make(map[uuid.UUID]domain_transfer.Transfer),
	}

	for _, a := range accounts {
		tb.accounts[a.Number()] = a
	}

	s := &Store{}
	s.state.Store(tb)

	return s
}

// GetAccount reads one consistent snapshot. It never blocks and never
// retries; the row it returns may be stale by the time the caller acts on it.
func (s *Store) GetAccount(_ context.Context, number string) (domain_account.Account, error) {
	a, ok := s.state.Load().accounts[number]
	if !ok {
		return domain_account.Account{}, fmt.Errorf("account %s: %w", number, port_persistence.ErrNotFound)
	}

	return a, nil
}

// Commit applies a movement as one compare-and-swap against the state cell.
// On contention the whole computation is redone against the newer snapshot,
// so a concurrent commit is never lost: the transfer's legs are re-applied to
// the freshest rows rather than overwriting them with the caller's (possibly
// stale) snapshots. Those snapshots only seed rows that do not exist yet.
// Sufficiency was decided earlier, outside this loop; commits that jointly
// overdraw an account still all apply.
func (s *Store) Commit(_ context.Context, transfer *domain_transfer.Transfer, debited, credited domain_account.Account) error {
	for {
		cur := s.state.Load()

		next, err := cur.apply(transfer, debited, credited)
		if err != nil {
			return err
		}

		if s.state.CompareAndSwap(cur, next) {
			return nil
		}
	}
}

func (tb *tables) apply(transfer *domain_transfer.Transfer, debited, credited domain_account.Account) (*tables, error) {
	next := tb.clone()

	debitedRow, err := next.post(transfer.Debit().Number(), debited, domain_account.Account.PostDebit, transfer.Debit().Amount())
	if err != nil {
		return nil, err
	}

	creditedRow, err := next.post(transfer.Credit().Number(), credited, domain_account.Account.PostCredit, transfer.Credit().Amount())
	if err != nil {
		return nil, err
	}

	next.accounts[debitedRow.Number()] = debitedRow
	next.accounts[creditedRow.Number()] = creditedRow
	next.transfers[transfer.ID()] = *transfer

	return next, nil
}

func (tb *tables) post(
	number string,
	fallback domain_account.Account,
	op func(domain_account.Account, domain_money.Amount) (domain_account.Account, error),
	amount domain_money.Amount,
) (domain_account.Account, error) {
	row, ok := tb.accounts[number]
	if !ok {
		// First sight of this account: the caller's snapshot already
		// carries the applied leg.
		return fallback, nil
	}

	return op(row, amount)
}

// GetTransfer looks a transfer up in the current snapshot.
func (s *Store) GetTransfer(_ context.Context, id uuid.UUID) (domain_transfer.Transfer, error) {
	t, ok := s.state.Load().transfers[id]
	if !ok {
		return domain_transfer.Transfer{}, fmt.Errorf("transfer %s: %w", id, port_persistence.ErrNotFound)
	}

	return t, nil
}

// Transfers returns a copy of all transfer rows, in no particular order.
func (s *Store) Transfers(_ context.Context) []domain_transfer.Transfer {
	cur := s.state.Load()

	out := make([]domain_transfer.Transfer, 0, len(cur.transfers))
	for _, t := range cur.transfers {
		out = append(out, t)
	}

	return out
}
