package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/media"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
	"github.com/dmitrijs2005/back2me/internal/validation"
)

// ProfileService stores one profile picture per account.
type ProfileService interface {
	SetProfilePicture(ctx context.Context, userID, contentType string, data []byte) (string, error)
	ProfilePicture(ctx context.Context, userID string) (string, bool, error)
	OpenProfilePicture(ctx context.Context, userID string) ([]byte, string, error)
}

type profileService struct {
	base
	store   kv.Store
	backend media.Backend
}

// NewProfileService keeps picture references in store and the bytes in
// backend.
func NewProfileService(store kv.Store, backend media.Backend, opts ...Option) ProfileService {
	return &profileService{base: newBase(opts), store: store, backend: backend}
}

func profileKey(userID string) string {
	return keyProfilePrefix + userID
}

// SetProfilePicture validates and uploads the picture, then records its
// reference. It returns the reference.
func (s *profileService) SetProfilePicture(ctx context.Context, userID, contentType string, data []byte) (string, error) {
	verrs := validation.Errors{}
	verrs.Check(validation.Required(userID), "userId", "is required")
	if err := media.CheckPicture(contentType, data); err != nil {
		verrs.Add("picture", err.Error())
	}
	if err := verrs.Err(); err != nil {
		return "", err
	}

	ref, err := s.backend.Put(ctx, userID, contentType, data)
	if err != nil {
		return "", fmt.Errorf("store picture: %w", err)
	}
	if err := s.store.Set(ctx, profileKey(userID), []byte(ref)); err != nil {
		return "", fmt.Errorf("write %s: %w: %w", profileKey(userID), common.ErrorStorageUnavailable, err)
	}

	s.log.Info(ctx, "profile picture updated", "user", userID, "bytes", len(data))
	return ref, nil
}

// ProfilePicture returns the stored reference, if any. The value is kept as
// a bare string, not JSON.
func (s *profileService) ProfilePicture(ctx context.Context, userID string) (string, bool, error) {
	raw, err := s.store.Get(ctx, profileKey(userID))
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w: %w", profileKey(userID), common.ErrorStorageUnavailable, err)
	}
	if raw == nil {
		return "", false, nil
	}
	return string(raw), true, nil
}

// OpenProfilePicture resolves the stored reference to bytes and content type.
func (s *profileService) OpenProfilePicture(ctx context.Context, userID string) ([]byte, string, error) {
	ref, ok, err := s.ProfilePicture(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("profile picture for %s: %w", userID, common.ErrorNotFound)
	}
	data, contentType, err := s.backend.Open(ctx, ref)
	if errors.Is(err, media.ErrOtherBackend) || errors.Is(err, media.ErrBadReference) {
		return nil, "", fmt.Errorf("profile picture for %s: %w: %w", userID, common.ErrorNotFound, err)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open picture: %w", err)
	}
	return data, contentType, nil
}
