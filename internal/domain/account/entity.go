package domain_account

import (
	"regexp"

	domain_money "github.com/MarcosLima-dev/core-bank-ledger-service/internal/domain/money"
	"github.com/MarcosLima-dev/core-bank-ledger-service/internal/fault"
)

// Account numbers are 12 digits drawn from 1-9; zero never appears.
var numberPattern = regexp.MustCompile(`^[1-9]{12}$`)

// Account is identified by its number; the balance changes over time through
// Debit and Credit. Transitions return a new snapshot and leave the receiver
// untouched.
type Account struct {
	number  string
	balance domain_money.Balance
}

func New(number string, balance domain_money.Balance) (Account, error) {
	if !numberPattern.MatchString(number) {
		return Account{}, ErrInvalidNumber
	}

	return Account{number: number, balance: balance}, nil
}

func (a Account) Number() string { return a.number }

func (a Account) Balance() domain_money.Balance { return a.balance }

// Debit returns the account with the debit applied. The resulting balance
// must be strictly positive; landing exactly on zero counts as insufficient.
func (a Account) Debit(d Debit) (Account, error) {
	if a.balance.Currency() != d.Amount().Currency() {
		return Account{}, fault.Wrapf(fault.IllegalOperation, ErrCurrencyMismatch,
			"account %s holds %s, debit is %s", a.number, a.balance.Currency(), d.Amount().Currency())
	}

	if a.number != d.Number() {
		return Account{}, fault.Wrapf(fault.IllegalOperation, ErrNumberMismatch,
			"account %s cannot apply debit addressed to %s", a.number, d.Number())
	}

	next, err := a.balance.Sub(d.Amount())
	if err != nil {
		return Account{}, err
	}

	if !next.Value().IsPositive() {
		return Account{}, fault.Wrapf(fault.IllegalOperation, ErrInsufficientBalance,
			"account %s with balance %s cannot cover debit of %s", a.number, a.balance, d.Amount())
	}

	return Account{number: a.number, balance: next}, nil
}

// Credit returns the account with the credit applied. There is no upper
// bound; it fails only on currency or number mismatch.
func (a Account) Credit(c Credit) (Account, error) {
	if a.balance.Currency() != c.Amount().Currency() {
		return Account{}, fault.Wrapf(fault.IllegalOperation, ErrCurrencyMismatch,
			"account %s holds %s, credit is %s", a.number, a.balance.Currency(), c.Amount().Currency())
	}

	if a.number != c.Number() {
		return Account{}, fault.Wrapf(fault.IllegalOperation, ErrNumberMismatch,
			"account %s cannot apply credit addressed to %s", a.number, c.Number())
	}

	next, err := a.balance.Add(c.Amount())
	if err != nil {
		return Account{}, err
	}

	return Account{number: a.number, balance: next}, nil
}

// PostDebit applies amount without the sufficiency rule; the balance may go
// negative. The store's commit uses it to re-apply a settled leg to the
// freshest row. Funds checks belong to Debit, before commit.
func (a Account) PostDebit(amount domain_money.Amount) (Account, error) {
	next, err := a.balance.Sub(amount)
	if err != nil {
		return Account{}, err
	}

	return Account{number: a.number, balance: next}, nil
}

// PostCredit is the credit counterpart of PostDebit.
func (a Account) PostCredit(amount domain_money.Amount) (Account, error) {
	next, err := a.balance.Add(amount)
	if err != nil {
		return Account{}, err
	}

	return Account{number: a.number, balance: next}, nil
}
