package port_persistence

import (
	"context"

	domain_account "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/account"
	domain_transfer "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"
)

var ErrNotFound = fault.New(fault.NotFound, "persistence: not found")

// Store holds the account and transfer tables behind one atomically-swappable
// state. GetAccount reads a single consistent snapshot without locking; the
// snapshot may already be stale when the caller acts on it. Commit applies a
// movement as one atomic state transition: both account rows and the appended
// transfer become visible together or not at all. Commit blocks only on
// contention with other commits, never on I/O.
type Store interface {
	GetAccount(ctx context.Context, number string) (domain_account.Account, error)
	Commit(ctx context.Context, transfer *domain_transfer.Transfer, debited, credited domain_account.Account) error
}
