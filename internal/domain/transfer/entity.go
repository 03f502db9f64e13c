package domain_transfer

import (
	"regexp"
	"time"

	domain_account "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/google/uuid"
)

// Transfer references are 3 uppercase letters followed by 8 digits from 1-9.
var numberPattern = regexp.MustCompile(`^[A-Z]{3}[1-9]{8}$`)

// Transfer is the immutable record of one debit/credit pair. Once built it is
// never mutated; the store only ever appends it.
type Transfer struct {
	id     uuid.UUID
	number string

	debit  domain_account.Debit
	credit domain_account.Credit

	createdAt time.Time
}

type NewParams struct {
	TransferID uuid.UUID
	Number     string
	Debit      domain_account.Debit
	Credit     domain_account.Credit
	Now        time.Time
}

func New(p NewParams) (*Transfer, error) {
	if p.TransferID == uuid.Nil {
		return nil, ErrInvalidTransferID
	}

	if !numberPattern.MatchString(p.Number) {
		return nil, ErrInvalidNumber
	}

	if !p.Debit.Amount().Equal(p.Credit.Amount()) {
		return nil, ErrAmountMismatch
	}

	if p.Debit.Number() == p.Credit.Number() {
		return nil, ErrSameAccount
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return &Transfer{
		id:        p.TransferID,
		number:    p.Number,
		debit:     p.Debit,
		credit:    p.Credit,
		createdAt: p.Now,
	}, nil
}

func (t *Transfer) ID() uuid.UUID { return t.id }

func (t *Transfer) Number() string { return t.number }

func (t *Transfer) Debit() domain_account.Debit { return t.debit }

func (t *Transfer) Credit() domain_account.Credit { return t.credit }

func (t *Transfer) CreatedAt() time.Time { return t.createdAt }
