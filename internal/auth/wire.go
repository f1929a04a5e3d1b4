package auth

import (
	"go.uber.org/zap"

	"servicecenter/internal/auth/controller"
	"servicecenter/internal/auth/service"
	"servicecenter/internal/config"
	"servicecenter/internal/domain"
)

type Module struct {
	Controller *controller.AuthController
	Tokens     *service.TokenService
}

func NewModule(credentials []domain.Credential, cfg config.AuthConfig, logger *zap.Logger) *Module {
	authenticator := service.NewAuthenticator(credentials, logger)
	tokens := service.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)

	return &Module{
		Controller: controller.NewAuthController(authenticator, tokens, logger),
		Tokens:     tokens,
	}
}
