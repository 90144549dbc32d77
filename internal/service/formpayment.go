package service

import (
	"context"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"
)

type FormPaymentService struct {
	formPayments *repository.FormPaymentRepository
	transactions *repository.TransactionRepository
	clock        Clock
}

func NewFormPaymentService(formPayments *repository.FormPaymentRepository, transactions *repository.TransactionRepository, clock Clock) *FormPaymentService {
	return &FormPaymentService{formPayments: formPayments, transactions: transactions, clock: clock}
}

type FormPaymentInput struct {
	Name   string
	Type   string
	UserID uint
}

// Add validates and persists one form of payment.
func (s *FormPaymentService) Add(ctx context.Context, in FormPaymentInput) (parser.FormPayment, error) {
	if in == (FormPaymentInput{}) {
		return parser.FormPayment{}, apperr.Required("FormPayment")
	}
	if in.Name == "" {
		return parser.FormPayment{}, apperr.Required("Name")
	}
	if in.Type == "" {
		return parser.FormPayment{}, apperr.Required("Type")
	}
	if in.UserID == 0 {
		return parser.FormPayment{}, apperr.Required("UserId")
	}

	f := models.FormPayment{
		Name:         in.Name,
		Type:         in.Type,
		UserID:       in.UserID,
		Enabled:      true,
		CreationDate: s.clock(),
	}
	if err := s.formPayments.Create(ctx, &f); err != nil {
		return parser.FormPayment{}, err
	}
	return parser.ParseFormPayment(f), nil
}

// GetByID resolves a form of payment with the same soft-miss contract as
// AccountService.GetByID.
func (s *FormPaymentService) GetByID(ctx context.Context, id uint) (parser.FormPayment, error) {
	if id == 0 {
		return parser.FormPayment{}, apperr.Required("Id")
	}
	f, err := s.formPayments.FindByID(ctx, id)
	if err != nil {
		return parser.FormPayment{}, err
	}
	return parser.ParseFormPayment(f), nil
}

func (s *FormPaymentService) GetAll(ctx context.Context, userID uint) ([]parser.FormPayment, error) {
	if userID == 0 {
		return nil, apperr.Required("UserId")
	}
	list, err := s.formPayments.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return parser.ParseFormPayments(list), nil
}

// Balances sums the user's transactions grouped by form of payment.
func (s *FormPaymentService) Balances(ctx context.Context, f BalanceFilter) ([]parser.Balance, error) {
	if f.UserID == 0 {
		return nil, apperr.Required("UserId")
	}

	rows, err := s.transactions.SumByFormPayment(ctx, repository.BalanceFilter{
		UserID:      f.UserID,
		InitialDate: f.InitialDate,
		FinalDate:   f.FinalDate,
	})
	if err != nil {
		return nil, err
	}

	out := make([]parser.Balance, 0, len(rows))
	for _, row := range rows {
		fp, err := s.formPayments.FindByID(ctx, row.GroupID)
		if err != nil {
			return nil, err
		}
		if fp.ID == 0 {
			continue
		}
		out = append(out, parser.Balance{ID: row.GroupID, Name: fp.Name, Balance: row.Balance})
	}
	return out, nil
}
