// Package media stores profile pictures and resolves the references that the
// profile store keeps under back2me_profile_pic_<userId>.
//
// Two backends exist: DataURIBackend inlines the bytes as a data: URI, and
// S3Backend uploads them to an S3-compatible bucket and returns an
// s3://bucket/key reference.
package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxPictureSize caps an uploaded picture.
const MaxPictureSize = 2 << 20

var (
	ErrUnsupportedType = errors.New("content type must be an image")
	ErrTooLarge        = errors.New("picture exceeds 2 MiB")
	ErrEmpty           = errors.New("picture is empty")
	ErrBadReference    = errors.New("unrecognized picture reference")
	ErrOtherBackend    = errors.New("picture is kept by a media backend that is not configured")
)

// Backend persists picture bytes and turns references back into bytes.
type Backend interface {
	Put(ctx context.Context, userID, contentType string, data []byte) (ref string, err error)
	Open(ctx context.Context, ref string) (data []byte, contentType string, err error)
}

// CheckPicture validates a picture before it is handed to a Backend.
func CheckPicture(contentType string, data []byte) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	if len(data) == 0 {
		return ErrEmpty
	}
	if len(data) > MaxPictureSize {
		return ErrTooLarge
	}
	return nil
}

// DataURIBackend keeps pictures inline as data: URIs.
type DataURIBackend struct{}

func (DataURIBackend) Put(_ context.Context, _ string, contentType string, data []byte) (string, error) {
	return EncodeDataURI(contentType, data), nil
}

func (DataURIBackend) Open(_ context.Context, ref string) ([]byte, string, error) {
	if strings.HasPrefix(ref, "s3://") {
		return nil, "", fmt.Errorf("%w: %s", ErrOtherBackend, ref)
	}
	return DecodeDataURI(ref)
}

// EncodeDataURI returns data:<contentType>;base64,<data>.
func EncodeDataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 data: URI.
func DecodeDataURI(ref string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(ref, "data:")
	if !ok {
		return nil, "", ErrBadReference
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrBadReference
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", ErrBadReference
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrBadReference, err)
	}
	return data, contentType, nil
}
