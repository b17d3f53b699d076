package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/cryptox"
	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/validation"
	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// ChangePasswordInput is the change-password form for AccountID.
type ChangePasswordInput struct {
	AccountID  string
	Current    string
	New        string
	ConfirmNew string
}

// AccountService manages the accounts collection.
//
// Contract:
//   - Register: validate, enforce unique email then username, store a hash.
//   - Authenticate: exact email match plus password verification.
//   - ChangePassword: verify the current password and replace the hash.
//   - RequestPasswordReset: confirm the email belongs to an account.
//   - Get: look an account up by id.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (models.Account, error)
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
	ChangePassword(ctx context.Context, in ChangePasswordInput) error
	RequestPasswordReset(ctx context.Context, email string) error
	Get(ctx context.Context, id string) (models.Account, error)
}

type accountService struct {
	base
	store kv.Store
}

// NewAccountService returns an AccountService persisting to store.
func NewAccountService(store kv.Store, opts ...Option) AccountService {
	return &accountService{base: newBase(opts), store: store}
}

func (s *accountService) Register(ctx context.Context, in RegisterInput) (models.Account, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	verrs := validation.Errors{}
	verrs.Check(validation.MinLen(username, minUsernameLen), "username", "must be at least 3 characters")
	verrs.Check(validation.IsEmail(email), "email", "must be a valid email address")
	verrs.Check(validation.MinLen(in.Password, minPasswordLen), "password", "must be at least 6 characters")
	verrs.Check(in.Password == in.ConfirmPassword, "confirmPassword", "passwords do not match")
	if err := verrs.Err(); err != nil {
		return models.Account{}, err
	}

	now := s.now()
	account := models.Account{
		ID:           newAccountID(now),
		Username:     username,
		Email:        email,
		PasswordHash: cryptox.HashPassword([]byte(in.Password)),
		CreatedAt:    now,
	}

	err := updateList(ctx, s.store, keyUsers, func(users []models.Account) ([]models.Account, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, common.ErrorDuplicateEmail
			}
		}
		for _, u := range users {
			if u.Username == username {
				return nil, common.ErrorDuplicateUsername
			}
		}
		return append(users, account), nil
	})
	if err != nil {
		return models.Account{}, err
	}

	s.log.Info(ctx, "account registered", "id", account.ID, "username", account.Username)
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	email = strings.TrimSpace(email)

	users, err := loadList[models.Account](ctx, s.store, keyUsers)
	if err != nil {
		return models.Account{}, err
	}

	account, ok := findAccount(users, func(a models.Account) bool { return a.Email == email })
	if !ok {
		cryptox.BurnPassword([]byte(password))
		return models.Account{}, common.ErrorInvalidCredentials
	}

	match, err := cryptox.VerifyPassword(account.PasswordHash, []byte(password))
	if err != nil {
		s.log.Warn(ctx, "stored password hash is unreadable", "id", account.ID, "error", err)
		return models.Account{}, common.ErrorInvalidCredentials
	}
	if !match {
		return models.Account{}, common.ErrorInvalidCredentials
	}
	return account, nil
}

func (s *accountService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	verrs := validation.Errors{}
	verrs.Check(validation.Required(in.Current), "currentPassword", "is required")
	verrs.Check(validation.Required(in.New), "newPassword", "is required")
	verrs.Check(validation.Required(in.ConfirmNew), "confirmPassword", "is required")
	verrs.Check(validation.MinLen(in.New, minPasswordLen), "newPassword", "must be at least 6 characters")
	verrs.Check(in.New == in.ConfirmNew, "confirmPassword", "passwords do not match")
	if err := verrs.Err(); err != nil {
		return err
	}

	newHash := cryptox.HashPassword([]byte(in.New))

	err := updateList(ctx, s.store, keyUsers, func(users []models.Account) ([]models.Account, error) {
		for i := range users {
			if users[i].ID != in.AccountID {
				continue
			}
			match, err := cryptox.VerifyPassword(users[i].PasswordHash, []byte(in.Current))
			if err != nil {
				return nil, fmt.Errorf("account %s: %w", in.AccountID, err)
			}
			if !match {
				return nil, common.ErrorWrongPassword
			}
			users[i].PasswordHash = newHash
			return users, nil
		}
		return nil, fmt.Errorf("account %s: %w", in.AccountID, common.ErrorNotFound)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "password changed", "id", in.AccountID)
	return nil
}

func (s *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validation.IsEmail(email) {
		return validation.Errors{"email": "must be a valid email address"}
	}

	users, err := loadList[models.Account](ctx, s.store, keyUsers)
	if err != nil {
		return err
	}
	account, ok := findAccount(users, func(a models.Account) bool { return a.Email == email })
	if !ok {
		return fmt.Errorf("email %s: %w", email, common.ErrorNotFound)
	}

	s.log.Info(ctx, "password reset requested", "id", account.ID, "email", account.Email)
	return nil
}

func (s *accountService) Get(ctx context.Context, id string) (models.Account, error) {
	users, err := loadList[models.Account](ctx, s.store, keyUsers)
	if err != nil {
		return models.Account{}, err
	}
	account, ok := findAccount(users, func(a models.Account) bool { return a.ID == id })
	if !ok {
		return models.Account{}, fmt.Errorf("account %s: %w", id, common.ErrorNotFound)
	}
	return account, nil
}

func findAccount(users []models.Account, match func(models.Account) bool) (models.Account, bool) {
	for _, u := range users {
		if match(u) {
			return u, true
		}
	}
	return models.Account{}, false
}

// newAccountID builds user_<unix ms>_<9 base36 chars>, taking the random
// part from a v4 UUID.
func newAccountID(now time.Time) string {
	u := uuid.New()
	s := new(big.Int).SetBytes(u[:]).Text(36)
	if len(s) < 9 {
		s = strings.Repeat("0", 9-len(s)) + s
	}
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), s[len(s)-9:])
}

// IsAccountError reports whether err is one of the account business-rule
// failures that the client shows to the user verbatim.
func IsAccountError(err error) bool {
	return errors.Is(err, common.ErrorDuplicateEmail) ||
		errors.Is(err, common.ErrorDuplicateUsername) ||
		errors.Is(err, common.ErrorInvalidCredentials) ||
		errors.Is(err, common.ErrorWrongPassword)
}
