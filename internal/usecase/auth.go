package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/pkg/session"
)

type AuthUseCase interface {
	// Login returns an opaque session token. The failure reason never
	// distinguishes unknown user from wrong password.
	Login(ctx context.Context, username, pass string) (string, error)
	Logout(token string)
	// Validate returns the principal for a live session token.
	Validate(token string) (string, bool)
}

type authUseCaseImpl struct {
	username string
	verifier password.Verifier
	sessions *session.Manager
}

func NewAuthUseCase(cfg config.AdminConfig, verifier password.Verifier, sessions *session.Manager) AuthUseCase {
	return &authUseCaseImpl{
		username: cfg.Username,
		verifier: verifier,
		sessions: sessions,
	}
}

// NewVerifier selects the password strategy once at startup. The bcrypt
// digest wins when both are configured; the plain-text path is a deprecated
// legacy fallback.
func NewVerifier(cfg config.AdminConfig) (password.Verifier, error) {
	if cfg.PasswordHash != "" {
		if cfg.Password != "" {
			slog.Warn("ADMIN_PASSWORD と ADMIN_PASSWORD_HASH が両方設定されています。ハッシュを使用します")
		}
		return password.NewBcryptVerifier(cfg.PasswordHash), nil
	}
	if cfg.Password != "" {
		slog.Warn("平文パスワード認証は非推奨です。ADMIN_PASSWORD_HASH への移行を推奨します")
		return password.NewPlaintextVerifier(cfg.Password), nil
	}
	return nil, password.ErrNoCredential
}

func (a *authUseCaseImpl) Login(_ context.Context, username, pass string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passErr := a.verifier.Verify(pass)

	if !userOK || passErr != nil {
		slog.Warn("管理者ログインに失敗しました", "username", username)
		return "", errs.ErrUnauthorized
	}

	token := a.sessions.Issue(username)
	slog.Info("管理者がログインしました", "active_sessions", a.sessions.ActiveCount())
	return token, nil
}

func (a *authUseCaseImpl) Logout(token string) {
	a.sessions.Revoke(token)
}

func (a *authUseCaseImpl) Validate(token string) (string, bool) {
	return a.sessions.Validate(token)
}
