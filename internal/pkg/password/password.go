package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrNoCredential     = errors.New("no admin credential configured")
)

const DefaultCost = 12

// Verifier checks a login password against the configured admin credential.
// Exactly one strategy is selected at startup; the two are never active at
// the same time.
type Verifier interface {
	Verify(password string) error
}

// BcryptVerifier compares against a bcrypt digest.
type BcryptVerifier struct {
	digest []byte
}

func NewBcryptVerifier(digest string) *BcryptVerifier {
	return &BcryptVerifier{digest: []byte(digest)}
}

func (v *BcryptVerifier) Verify(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword(v.digest, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// PlaintextVerifier compares against a raw password from the environment.
//
// Deprecated: legacy fallback for installations that predate hashed
// credentials. Constant-time comparison, but the secret still lives in the
// environment as-is; migrate to BcryptVerifier.
type PlaintextVerifier struct {
	secret string
}

func NewPlaintextVerifier(secret string) *PlaintextVerifier {
	return &PlaintextVerifier{secret: secret}
}

func (v *PlaintextVerifier) Verify(password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(v.secret), []byte(password)) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

// Hash generates a bcrypt digest for ADMIN_PASSWORD_HASH.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}
