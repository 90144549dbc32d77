package service

import (
	"context"
	"testing"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"github.com/shopspring/decimal"
)

func TestFormPaymentAdd_EmptyInput(t *testing.T) {
	f := newFixtures(t)

	_, err := f.formPayments.Add(context.Background(), FormPaymentInput{})

	wantAppErr(t, err, apperr.CodeValidation, "FormPayment are required")
}

func TestFormPaymentAdd_ValidationOrder(t *testing.T) {
	f := newFixtures(t)

	// name is checked before type: both missing reports the name first
	_, err := f.formPayments.Add(context.Background(), FormPaymentInput{UserID: 7})

	wantAppErr(t, err, apperr.CodeValidation, "Name are required")
}

func TestFormPaymentAdd_Defaults(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")

	out, err := f.formPayments.Add(context.Background(), FormPaymentInput{
		Name:   "Card 1",
		Type:   "creditCard",
		UserID: u.ID,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	var stored models.FormPayment
	if err := f.db.First(&stored, out.ID).Error; err != nil {
		t.Fatalf("load stored form payment: %v", err)
	}
	if !stored.Enabled {
		t.Error("stored enabled = false, want true")
	}
	if !stored.CreationDate.Equal(testNow) {
		t.Errorf("stored creationDate = %v, want clock value", stored.CreationDate)
	}
}

func TestFormPaymentGetByID_SoftMiss(t *testing.T) {
	f := newFixtures(t)

	out, err := f.formPayments.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID() error = %v, want soft miss", err)
	}
	if out.ID != 0 {
		t.Errorf("id = %d, want 0 for a miss", out.ID)
	}
}

func TestFormPaymentBalances_OneEntryPerFormPayment(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")
	card := f.seedFormPayment(t, u.ID, "Card")
	cash := f.seedFormPayment(t, u.ID, "Cash")

	add := func(value string, fpID uint) {
		t.Helper()
		_, err := f.transactions.Add(context.Background(), TransactionInput{
			Description:  "t",
			Value:        decimal.RequireFromString(value),
			Categories:   []string{"misc"},
			PurchaseDate: testNow,
			FormPayment:  fpID,
			UserID:       u.ID,
		})
		if err != nil {
			t.Fatalf("add transaction: %v", err)
		}
	}
	add("-12.50", card.ID)
	add("-7.25", card.ID)
	add("30.00", cash.ID)

	balances, err := f.formPayments.Balances(context.Background(), BalanceFilter{UserID: u.ID})
	if err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("len(balances) = %d, want one entry per form payment", len(balances))
	}

	byID := map[uint]int{}
	for i, b := range balances {
		byID[b.ID] = i
	}
	c := balances[byID[card.ID]]
	if c.Name != "Card" || !c.Balance.Equal(decimal.RequireFromString("-19.75")) {
		t.Errorf("card balance = %+v, want Card -19.75", c)
	}
	k := balances[byID[cash.ID]]
	if k.Name != "Cash" || !k.Balance.Equal(decimal.RequireFromString("30.00")) {
		t.Errorf("cash balance = %+v, want Cash 30.00", k)
	}
}

func TestFormPaymentBalances_EmptyForUserWithNothing(t *testing.T) {
	f := newFixtures(t)
	u := f.seedUser(t, "owner@test.dev")

	balances, err := f.formPayments.Balances(context.Background(), BalanceFilter{UserID: u.ID})
	if err != nil {
		t.Fatalf("Balances() error = %v", err)
	}
	if len(balances) != 0 {
		t.Errorf("balances = %+v, want empty", balances)
	}
}
