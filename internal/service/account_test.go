package service

import (
	"context"
	"testing"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"github.com/shopspring/decimal"
)

func TestAccountAdd_EmptyInput(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.Add(context.Background(), AccountInput{})

	wantAppErr(t, err, apperr.CodeValidation, "Account are required")
}

func TestAccountAdd_MissingName(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.Add(context.Background(), AccountInput{Type: "checking", UserID: 1})

	wantAppErr(t, err, apperr.CodeValidation, "Name are required")

	var n int64
	f.db.Model(&models.Account{}).Count(&n)
	if n != 0 {
		t.Errorf("accounts persisted = %d, want 0", n)
	}
}

func TestAccountAdd_MissingType(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.Add(context.Background(), AccountInput{Name: "Wallet", UserID: 1})

	wantAppErr(t, err, apperr.CodeValidation, "Type are required")
}

func TestAccountAdd_MissingUserID(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.Add(context.Background(), AccountInput{Name: "Wallet", Type: "checking"})

	wantAppErr(t, err, apperr.CodeValidation, "UserId are required")
}

func TestAccountAdd_Defaults(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")

	out, err := f.accounts.Add(context.Background(), AccountInput{
		Name:   "Card 1",
		Type:   "creditCard",
		UserID: u.ID,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if out.ID == 0 {
		t.Error("id = 0, want assigned")
	}
	if out.Name != "Card 1" || out.Type != "creditCard" {
		t.Errorf("parsed = %+v, want name/type echoed back", out)
	}
	if !out.CreationDate.Equal(testNow) {
		t.Errorf("creationDate = %v, want clock value %v", out.CreationDate, testNow)
	}

	var stored models.Account
	if err := f.db.First(&stored, out.ID).Error; err != nil {
		t.Fatalf("load stored account: %v", err)
	}
	if !stored.Enabled {
		t.Error("stored enabled = false, want true")
	}
	if stored.UserID != u.ID {
		t.Errorf("stored userId = %d, want %d", stored.UserID, u.ID)
	}
}

func TestAccountGetByID_MissingID(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.GetByID(context.Background(), 0)

	wantAppErr(t, err, apperr.CodeValidation, "Id are required")
}

func TestAccountGetByID_SoftMiss(t *testing.T) {
	f := newFixtures(t)

	out, err := f.accounts.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID() error = %v, want soft miss", err)
	}
	if out.ID != 0 {
		t.Errorf("id = %d, want 0 for a miss", out.ID)
	}
}

func TestAccountGetAll_MissingUserID(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.GetAll(context.Background(), 0)

	wantAppErr(t, err, apperr.CodeValidation, "UserId are required")
}

func TestAccountGetAll_OnlyOwnAccounts(t *testing.T) {
	f := newFixtures(t)
	owner := f.seedUser(t, "owner@test.dev")
	other := f.seedUser(t, "other@test.dev")
	f.seedAccount(t, owner.ID, "Wallet")
	f.seedAccount(t, other.ID, "Not mine")

	list, err := f.accounts.GetAll(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "Wallet" {
		t.Errorf("list = %+v, want only the owner's account", list)
	}
}

func TestAccountBalances_MissingUserID(t *testing.T) {
	f := newFixtures(t)

	_, err := f.accounts.Balances(context.Background(), BalanceFilter{})

	wantAppErr(t, err, apperr.CodeValidation, "UserId are required")
}

func TestAccountBalances_NoTransactions(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")
	f.seedAccount(t, u.ID, "Wallet")

	balances, err := f.accounts.Balances(context.Background(), BalanceFilter{UserID: u.ID})
	if err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if len(balances) != 0 {
		t.Errorf("balances = %+v, want empty", balances)
	}
}

func TestAccountBalances_GroupsAndSums(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")
	fp := f.seedFormPayment(t, u.ID, "Card")
	wallet := f.seedAccount(t, u.ID, "Wallet")
	savings := f.seedAccount(t, u.ID, "Savings")

	add := func(value string, accountID uint) {
		t.Helper()
		_, err := f.transactions.Add(context.Background(), TransactionInput{
			Description:  "t",
			Value:        decimal.RequireFromString(value),
			Categories:   []string{"misc"},
			PurchaseDate: testNow,
			FormPayment:  fp.ID,
			Account:      accountID,
			UserID:       u.ID,
		})
		if err != nil {
			t.Fatalf("add transaction: %v", err)
		}
	}
	add("100.50", wallet.ID)
	add("-40.25", wallet.ID)
	add("10.00", savings.ID)

	balances, err := f.accounts.Balances(context.Background(), BalanceFilter{UserID: u.ID})
	if err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("len(balances) = %d, want 2", len(balances))
	}

	byID := map[uint]int{}
	for i, b := range balances {
		byID[b.ID] = i
	}
	w := balances[byID[wallet.ID]]
	if w.Name != "Wallet" || !w.Balance.Equal(decimal.RequireFromString("60.25")) {
		t.Errorf("wallet balance = %+v, want Wallet 60.25", w)
	}
	s := balances[byID[savings.ID]]
	if s.Name != "Savings" || !s.Balance.Equal(decimal.RequireFromString("10.00")) {
		t.Errorf("savings balance = %+v, want Savings 10.00", s)
	}
}

func TestAccountBalances_DateWindow(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")
	fp := f.seedFormPayment(t, u.ID, "Card")
	wallet := f.seedAccount(t, u.ID, "Wallet")

	add := func(value string, date time.Time) {
		t.Helper()
		_, err := f.transactions.Add(context.Background(), TransactionInput{
			Description:  "t",
			Value:        decimal.RequireFromString(value),
			Categories:   []string{"misc"},
			PurchaseDate: date,
			FormPayment:  fp.ID,
			Account:      wallet.ID,
			UserID:       u.ID,
		})
		if err != nil {
			t.Fatalf("add transaction: %v", err)
		}
	}
	add("10.00", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	add("20.00", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	add("40.00", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	initial := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	final := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	balances, err := f.accounts.Balances(context.Background(), BalanceFilter{
		UserID:      u.ID,
		InitialDate: &initial,
		FinalDate:   &final,
	})
	if err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if len(balances) != 1 {
		t.Fatalf("len(balances) = %d, want 1", len(balances))
	}
	if !balances[0].Balance.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("balance = %s, want only the in-window value 20.00", balances[0].Balance)
	}
}
