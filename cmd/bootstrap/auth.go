package bootstrap

import (
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/pkg/session"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewVerifier,
		NewSessionManager,
		NewAuthUseCase,
	),
)

func NewVerifier(cfg config.Config) (password.Verifier, error) {
	return usecase.NewVerifier(cfg.Admin)
}

func NewSessionManager(clk clock.Clock, cfg config.Config) *session.Manager {
	return session.NewManager(clk, cfg.Admin.SessionTTL)
}

func NewAuthUseCase(cfg config.Config, verifier password.Verifier, sessions *session.Manager) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Admin, verifier, sessions)
}
