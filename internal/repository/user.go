package repository

import (
	"context"
	"errors"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return classify(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) Save(ctx context.Context, u *models.User) error {
	return classify(r.db.WithContext(ctx).Save(u).Error)
}

// FindByID returns a zero-valued user when no record matches.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, classify(err)
	}
	return u, nil
}

// FindByEmail returns a zero-valued user when no record matches.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, classify(err)
	}
	return u, nil
}

// FindByCredentials matches the (email, digest) pair, returning a
// zero-valued user on a miss so callers cannot tell which part was wrong.
func (r *UserRepository) FindByCredentials(ctx context.Context, email, digest string) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND password_digest = ?", email, digest).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, classify(err)
	}
	return u, nil
}
