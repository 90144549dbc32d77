// Package parser converts persisted records into their API-facing shapes.
// Internal fields (user id, enable flag, password digest) never leak out.
package parser

import (
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"github.com/shopspring/decimal"
)

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthUser is the login result: the parsed identity plus its token.
type AuthUser struct {
	User
	Token string `json:"token"`
}

type Account struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CreationDate time.Time `json:"creationDate"`
}

type FormPayment struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CreationDate time.Time `json:"creationDate"`
}

type Transaction struct {
	ID           uint            `json:"id"`
	Description  string          `json:"description"`
	Value        decimal.Decimal `json:"value"`
	Categories   []string        `json:"categories"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	FormPayment  uint            `json:"formPayment"`
	Account      uint            `json:"account,omitempty"`
	Installments int             `json:"installments,omitempty"`
	CreationDate time.Time       `json:"creationDate"`
}

// Balance is a derived aggregate, never persisted: the grouped entity, its
// display name and the signed sum of its transaction values.
type Balance struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func ParseUser(u models.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ParseAccount(a models.Account) Account {
	return Account{ID: a.ID, Name: a.Name, Type: a.Type, CreationDate: a.CreationDate}
}

func ParseAccounts(list []models.Account) []Account {
	out := make([]Account, 0, len(list))
	for _, a := range list {
		out = append(out, ParseAccount(a))
	}
	return out
}

func ParseFormPayment(f models.FormPayment) FormPayment {
	return FormPayment{ID: f.ID, Name: f.Name, Type: f.Type, CreationDate: f.CreationDate}
}

func ParseFormPayments(list []models.FormPayment) []FormPayment {
	out := make([]FormPayment, 0, len(list))
	for _, f := range list {
		out = append(out, ParseFormPayment(f))
	}
	return out
}

func ParseTransaction(t models.Transaction) Transaction {
	return Transaction{
		ID:           t.ID,
		Description:  t.Description,
		Value:        t.Value,
		Categories:   t.Categories,
		PurchaseDate: t.PurchaseDate,
		FormPayment:  t.FormPaymentID,
		Account:      t.AccountID,
		Installments: t.Installments,
		CreationDate: t.CreationDate,
	}
}

func ParseTransactions(list []models.Transaction) []Transaction {
	out := make([]Transaction, 0, len(list))
	for _, t := range list {
		out = append(out, ParseTransaction(t))
	}
	return out
}
