// Package service holds the business objects. Each one validates input in
// declaration order, short-circuiting at the first missing field, applies
// defaulting (enable flag, creation stamp from the injected clock) and
// delegates to the repositories and record parsers.
package service

import (
	"context"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"
)

// BalanceFilter selects whose balances to aggregate and over which
// purchase-date window.
type BalanceFilter struct {
	UserID      uint
	InitialDate *time.Time
	FinalDate   *time.Time
}

type AccountService struct {
	accounts     *repository.AccountRepository
	transactions *repository.TransactionRepository
	clock        Clock
}

func NewAccountService(accounts *repository.AccountRepository, transactions *repository.TransactionRepository, clock Clock) *AccountService {
	return &AccountService{accounts: accounts, transactions: transactions, clock: clock}
}

type AccountInput struct {
	Name   string
	Type   string
	UserID uint
}

// Add validates and persists one account.
func (s *AccountService) Add(ctx context.Context, in AccountInput) (parser.Account, error) {
	if in == (AccountInput{}) {
		return parser.Account{}, apperr.Required("Account")
	}
	if in.Name == "" {
		return parser.Account{}, apperr.Required("Name")
	}
	if in.Type == "" {
		return parser.Account{}, apperr.Required("Type")
	}
	if in.UserID == 0 {
		return parser.Account{}, apperr.Required("UserId")
	}

	a := models.Account{
		Name:         in.Name,
		Type:         in.Type,
		UserID:       in.UserID,
		Enabled:      true,
		CreationDate: s.clock(),
	}
	if err := s.accounts.Create(ctx, &a); err != nil {
		return parser.Account{}, err
	}
	return parser.ParseAccount(a), nil
}

// GetByID resolves an account. A miss is soft: a zero-valued result and no
// error, so callers check the id field for existence.
func (s *AccountService) GetByID(ctx context.Context, id uint) (parser.Account, error) {
	if id == 0 {
		return parser.Account{}, apperr.Required("Id")
	}
	a, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return parser.Account{}, err
	}
	return parser.ParseAccount(a), nil
}

func (s *AccountService) GetAll(ctx context.Context, userID uint) ([]parser.Account, error) {
	if userID == 0 {
		return nil, apperr.Required("UserId")
	}
	list, err := s.accounts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return parser.ParseAccounts(list), nil
}

// Balances sums the user's transactions grouped by account. Accounts with
// no matching transactions are absent, never zero-balance rows.
func (s *AccountService) Balances(ctx context.Context, f BalanceFilter) ([]parser.Balance, error) {
	if f.UserID == 0 {
		return nil, apperr.Required("UserId")
	}

	rows, err := s.transactions.SumByAccount(ctx, repository.BalanceFilter{
		UserID:      f.UserID,
		InitialDate: f.InitialDate,
		FinalDate:   f.FinalDate,
	})
	if err != nil {
		return nil, err
	}

	out := make([]parser.Balance, 0, len(rows))
	for _, row := range rows {
		a, err := s.accounts.FindByID(ctx, row.GroupID)
		if err != nil {
			return nil, err
		}
		if a.ID == 0 {
			continue
		}
		out = append(out, parser.Balance{ID: row.GroupID, Name: a.Name, Balance: row.Balance})
	}
	return out, nil
}
