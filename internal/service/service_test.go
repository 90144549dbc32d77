package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// a single connection serializes the concurrent installment writes
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Account{},
		&models.FormPayment{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixtures struct {
	db           *gorm.DB
	users        *UserService
	accounts     *AccountService
	formPayments *FormPaymentService
	transactions *TransactionService
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	formPaymentRepo := repository.NewFormPaymentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	issue := func(userID uint) (string, error) {
		return util.GenerateToken("test-secret", userID, time.Hour)
	}
	digester := NewPBKDF2Digester("test-salt", 1000)

	users := NewUserService(userRepo, digester, fixedClock, issue)
	accounts := NewAccountService(accountRepo, transactionRepo, fixedClock)
	formPayments := NewFormPaymentService(formPaymentRepo, transactionRepo, fixedClock)
	transactions := NewTransactionService(transactionRepo, formPayments, users, fixedClock)

	return &fixtures{
		db:           db,
		users:        users,
		accounts:     accounts,
		formPayments: formPayments,
		transactions: transactions,
	}
}

func (f *fixtures) seedUser(t *testing.T, email string) parser.User {
	t.Helper()
	u, err := f.users.Register(context.Background(), RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (f *fixtures) seedAccount(t *testing.T, userID uint, name string) parser.Account {
	t.Helper()
	a, err := f.accounts.Add(context.Background(), AccountInput{
		Name:   name,
		Type:   "checking",
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a
}

func (f *fixtures) seedFormPayment(t *testing.T, userID uint, name string) parser.FormPayment {
	t.Helper()
	fp, err := f.formPayments.Add(context.Background(), FormPaymentInput{
		Name:   name,
		Type:   "creditCard",
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("seed form payment: %v", err)
	}
	return fp
}

func (f *fixtures) countTransactions(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&models.Transaction{}).Count(&n).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	return n
}

// wantAppErr asserts err carries the given code and message.
func wantAppErr(t *testing.T, err error, code int, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want code %d %q", code, msg)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error = %v, want *apperr.Error", err)
	}
	if ae.Code != code {
		t.Errorf("code = %d, want %d", ae.Code, code)
	}
	if ae.Message != msg {
		t.Errorf("message = %q, want %q", ae.Message, msg)
	}
}
