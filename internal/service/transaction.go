package service

import (
	"context"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type TransactionService struct {
	transactions *repository.TransactionRepository
	formPayments *FormPaymentService
	users        *UserService
	clock        Clock
}

func NewTransactionService(transactions *repository.TransactionRepository, formPayments *FormPaymentService, users *UserService, clock Clock) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		formPayments: formPayments,
		users:        users,
		clock:        clock,
	}
}

type TransactionInput struct {
	Description  string
	Value        decimal.Decimal
	Categories   []string
	PurchaseDate time.Time
	FormPayment  uint
	Account      uint
	Installments int
	UserID       uint
}

func (in TransactionInput) empty() bool {
	return in.Description == "" &&
		in.Value.IsZero() &&
		len(in.Categories) == 0 &&
		in.PurchaseDate.IsZero() &&
		in.FormPayment == 0
}

// Add validates the transaction, resolves its form-of-payment reference and
// persists it. A transaction with installments = N persists N additional
// copies, copy i dated i months after the original, so the first copy
// repeats the original's month. That count and anchor reproduce the
// historical behavior on purpose; the copies drop the installment count and
// get their own ids. The copy writes run concurrently and are all awaited:
// any failure fails the whole call. Only the original row is returned.
func (s *TransactionService) Add(ctx context.Context, in TransactionInput) (parser.Transaction, error) {
	if in.empty() {
		return parser.Transaction{}, apperr.Required("Transaction")
	}
	if in.Description == "" {
		return parser.Transaction{}, apperr.Required("Description")
	}
	if in.Value.IsZero() {
		return parser.Transaction{}, apperr.Required("Value")
	}
	if len(in.Categories) == 0 {
		return parser.Transaction{}, apperr.Required("Categories")
	}
	if in.PurchaseDate.IsZero() {
		return parser.Transaction{}, apperr.Required("PurchaseDate")
	}
	if in.FormPayment == 0 {
		return parser.Transaction{}, apperr.Required("FormPayment")
	}
	if in.UserID == 0 {
		return parser.Transaction{}, apperr.Required("UserId")
	}

	// referential check: after field validation, before any persist
	fp, err := s.formPayments.GetByID(ctx, in.FormPayment)
	if err != nil {
		return parser.Transaction{}, err
	}
	if fp.ID == 0 {
		return parser.Transaction{}, apperr.NotFound("the referenced form of payment was not found")
	}

	t := models.Transaction{
		Description:   in.Description,
		Value:         in.Value,
		Categories:    in.Categories,
		PurchaseDate:  in.PurchaseDate,
		FormPaymentID: in.FormPayment,
		AccountID:     in.Account,
		Installments:  in.Installments,
		UserID:        in.UserID,
		Enabled:       true,
		CreationDate:  s.clock(),
	}
	if err := s.transactions.Create(ctx, &t); err != nil {
		return parser.Transaction{}, err
	}

	if in.Installments > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < in.Installments; i++ {
			month := i
			g.Go(func() error {
				inst := t
				inst.ID = 0
				inst.Installments = 0
				inst.PurchaseDate = t.PurchaseDate.AddDate(0, month, 0)
				return s.transactions.Create(gctx, &inst)
			})
		}
		if err := g.Wait(); err != nil {
			return parser.Transaction{}, err
		}
	}

	return parser.ParseTransaction(t), nil
}

// GetByID resolves a transaction with the soft-miss contract.
func (s *TransactionService) GetByID(ctx context.Context, id uint) (parser.Transaction, error) {
	if id == 0 {
		return parser.Transaction{}, apperr.Required("Id")
	}
	t, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return parser.Transaction{}, err
	}
	return parser.ParseTransaction(t), nil
}

// GetAll lists the user's transactions. An unknown user resolves to an
// empty list without touching the transaction table.
func (s *TransactionService) GetAll(ctx context.Context, userID uint) ([]parser.Transaction, error) {
	if userID == 0 {
		return nil, apperr.Required("UserId")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.ID == 0 {
		return []parser.Transaction{}, nil
	}

	list, err := s.transactions.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return parser.ParseTransactions(list), nil
}
