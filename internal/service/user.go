package service

import (
	"context"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/models"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/parser"
	"github.com/VitorDaynno/Plutus-Service-sub000/internal/repository"
)

// TokenIssuer signs a token carrying the user's identity.
type TokenIssuer func(userID uint) (string, error)

// UserService owns user signup, authentication and profile updates.
type UserService struct {
	users  *repository.UserRepository
	digest Digester
	clock  Clock
	issue  TokenIssuer
}

func NewUserService(users *repository.UserRepository, digest Digester, clock Clock, issue TokenIssuer) *UserService {
	return &UserService{users: users, digest: digest, clock: clock, issue: issue}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a digested password. Emails are unique.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (parser.User, error) {
	if in == (RegisterInput{}) {
		return parser.User{}, apperr.Required("User")
	}
	if in.Name == "" {
		return parser.User{}, apperr.Required("Name")
	}
	if in.Email == "" {
		return parser.User{}, apperr.Required("Email")
	}
	if in.Password == "" {
		return parser.User{}, apperr.Required("Password")
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return parser.User{}, err
	}
	if existing.ID != 0 {
		return parser.User{}, apperr.Validation("Email already exists")
	}

	u := models.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordDigest: s.digest.Digest(in.Password),
		Enabled:        true,
		CreatedAt:      s.clock(),
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return parser.User{}, err
	}
	return parser.ParseUser(u), nil
}

type AuthInput struct {
	Email    string
	Password string
}

// Auth matches the (email, password digest) pair and issues a token. A miss
// never says which part was wrong.
func (s *UserService) Auth(ctx context.Context, in AuthInput) (parser.AuthUser, error) {
	if in.Email == "" {
		return parser.AuthUser{}, apperr.Required("Email")
	}
	if in.Password == "" {
		return parser.AuthUser{}, apperr.Required("Password")
	}

	u, err := s.users.FindByCredentials(ctx, in.Email, s.digest.Digest(in.Password))
	if err != nil {
		return parser.AuthUser{}, err
	}
	if u.ID == 0 {
		return parser.AuthUser{}, apperr.Authentication("Email or password are incorrect")
	}

	token, err := s.issue(u.ID)
	if err != nil {
		return parser.AuthUser{}, apperr.Storage(err)
	}
	return parser.AuthUser{User: parser.ParseUser(u), Token: token}, nil
}

// GetByID resolves a user, returning a zero-valued result on a miss.
func (s *UserService) GetByID(ctx context.Context, id uint) (parser.User, error) {
	if id == 0 {
		return parser.User{}, apperr.Required("Id")
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return parser.User{}, err
	}
	return parser.ParseUser(u), nil
}

type UpdateUserInput struct {
	ID    uint
	Name  string
	Email string
}

// Update lets the owner change name and email.
func (s *UserService) Update(ctx context.Context, in UpdateUserInput) (parser.User, error) {
	if in.ID == 0 {
		return parser.User{}, apperr.Required("Id")
	}
	if in.Name == "" && in.Email == "" {
		return parser.User{}, apperr.Validation("Name or Email are required")
	}

	u, err := s.users.FindByID(ctx, in.ID)
	if err != nil {
		return parser.User{}, err
	}
	if u.ID == 0 {
		return parser.User{}, apperr.NotFound("user not found")
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		other, err := s.users.FindByEmail(ctx, in.Email)
		if err != nil {
			return parser.User{}, err
		}
		if other.ID != 0 && other.ID != u.ID {
			return parser.User{}, apperr.Validation("Email already exists")
		}
		u.Email = in.Email
	}

	if err := s.users.Save(ctx, &u); err != nil {
		return parser.User{}, err
	}
	return parser.ParseUser(u), nil
}
