package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/back2me/internal/auth"
	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/models"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
)

// SessionService keeps the logged-in identity in one of two scopes: the
// durable store ("remember me") or the ephemeral store (this process only).
type SessionService interface {
	StartSession(ctx context.Context, account models.Account, persistent bool) (models.Session, error)
	CurrentSession(ctx context.Context) (models.Session, bool, error)
	EndSession(ctx context.Context) error
}

type sessionService struct {
	base
	durable   kv.Store
	ephemeral kv.Store
	secret    []byte
	ttl       time.Duration
}

// NewSessionService returns a SessionService. Tokens are signed with secret
// and expire after ttl.
func NewSessionService(durable, ephemeral kv.Store, secret []byte, ttl time.Duration, opts ...Option) SessionService {
	return &sessionService{
		base:      newBase(opts),
		durable:   durable,
		ephemeral: ephemeral,
		secret:    secret,
		ttl:       ttl,
	}
}

// StartSession writes the session to the chosen scope and removes any
// session held by the other one, so at most one scope is populated.
func (s *sessionService) StartSession(ctx context.Context, account models.Account, persistent bool) (models.Session, error) {
	now := s.now()
	token, err := auth.GenerateToken(account.ID, s.secret, now, s.ttl)
	if err != nil {
		return models.Session{}, fmt.Errorf("sign session token: %w", err)
	}

	session := models.Session{
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
		IssuedAt: now,
		Token:    token,
	}

	target, other := s.ephemeral, s.durable
	if persistent {
		target, other = s.durable, s.ephemeral
	}
	if err := putJSON(ctx, target, keySession, session); err != nil {
		return models.Session{}, err
	}
	if err := other.Delete(ctx, keySession); err != nil {
		return models.Session{}, fmt.Errorf("clear %s: %w: %w", keySession, common.ErrorStorageUnavailable, err)
	}

	s.log.Info(ctx, "session started", "user", account.ID, "persistent", persistent)
	return session, nil
}

// CurrentSession returns the durable session if there is a valid one, then
// the ephemeral one. A session whose token fails verification counts as
// absent.
func (s *sessionService) CurrentSession(ctx context.Context) (models.Session, bool, error) {
	for _, scope := range []struct {
		name  string
		store kv.Store
	}{{"durable", s.durable}, {"ephemeral", s.ephemeral}} {
		var session models.Session
		ok, err := getJSON(ctx, scope.store, keySession, &session)
		if err != nil {
			return models.Session{}, false, err
		}
		if !ok {
			continue
		}

		userID, err := auth.GetUserIDFromToken(session.Token, s.secret, s.now())
		if err != nil || userID != session.UserID {
			s.log.Debug(ctx, "ignoring session with invalid token", "scope", scope.name, "user", session.UserID)
			continue
		}
		return session, true, nil
	}
	return models.Session{}, false, nil
}

// EndSession clears both scopes.
func (s *sessionService) EndSession(ctx context.Context) error {
	var errs []error
	if err := s.durable.Delete(ctx, keySession); err != nil {
		errs = append(errs, err)
	}
	if err := s.ephemeral.Delete(ctx, keySession); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("end session: %w: %w", common.ErrorStorageUnavailable, err)
	}

	s.log.Info(ctx, "session ended")
	return nil
}
