//go:build unit

package password_test

import (
	"testing"

	"salon-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptVerifier(t *testing.T) {
	digest, err := password.Hash("correct horse")
	require.NoError(t, err)

	v := password.NewBcryptVerifier(digest)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, v.Verify("correct horse"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("battery staple"), password.ErrPasswordMismatch)
	})

	t.Run("empty password", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(""), password.ErrInvalidPassword)
	})

	t.Run("malformed digest", func(t *testing.T) {
		broken := password.NewBcryptVerifier("not-a-bcrypt-digest")
		assert.Error(t, broken.Verify("anything"))
	})
}

func TestPlaintextVerifier(t *testing.T) {
	v := password.NewPlaintextVerifier("secret")

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, v.Verify("secret"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("other"), password.ErrPasswordMismatch)
	})

	t.Run("empty password", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(""), password.ErrInvalidPassword)
	})
}

func TestHash(t *testing.T) {
	t.Run("digests differ per call", func(t *testing.T) {
		a, err := password.Hash("pw")
		require.NoError(t, err)
		b, err := password.Hash("pw")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}
