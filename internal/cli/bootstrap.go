package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/config"
	"github.com/dmitrijs2005/back2me/internal/media"
	"github.com/dmitrijs2005/back2me/internal/repositories/kv"
)

const keySigningSecret = "back2me_signing_key"

// resolveSecret returns configured when set. Otherwise it returns the secret
// kept in the durable store, generating and saving one on first use.
func resolveSecret(ctx context.Context, store kv.Store, configured string) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	var secret []byte
	err := store.Atomically(ctx, func(ctx context.Context, r kv.Repository) error {
		v, err := r.Get(ctx, keySigningSecret)
		if err != nil {
			return err
		}
		if v != nil {
			secret = v
			return nil
		}
		hex, err := common.MakeRandHexString(32)
		if err != nil {
			return err
		}
		secret = []byte(hex)
		return r.Set(ctx, keySigningSecret, secret)
	})
	if err != nil {
		return nil, fmt.Errorf("load signing secret: %w: %w", common.ErrorStorageUnavailable, err)
	}
	return secret, nil
}

// newMediaBackend picks where profile pictures are kept.
func newMediaBackend(ctx context.Context, c *config.Config) (media.Backend, error) {
	if c.MediaBackend != config.MediaS3 {
		return media.DataURIBackend{}, nil
	}
	client, err := media.NewS3Client(ctx, media.S3Config{
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return media.NewS3Backend(client, c.S3Bucket, ""), nil
}
