package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = hex.DecodeString(s)
	require.NoError(t, err)

	empty, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(24)
	b := GenerateRandByteArray(24)
	require.Len(t, a, 24)
	require.Len(t, b, 24)
	if assert.ObjectsAreEqual(a, b) {
		t.Logf("two random buffers are identical; extremely unlikely")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("secret")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 6), buf)

	WipeByteArray(nil)
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorStorageUnavailable, ErrorValidation,
		ErrorDuplicateEmail, ErrorDuplicateUsername,
		ErrorInvalidCredentials, ErrorWrongPassword, ErrInvalidToken,
	}
	for i, e := range all {
		wrapped := fmt.Errorf("layer: %w", e)
		assert.ErrorIs(t, wrapped, e)
		for j, other := range all {
			if i != j {
				assert.False(t, errors.Is(wrapped, other), "%v must not match %v", e, other)
			}
		}
	}
}
