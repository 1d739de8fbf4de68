package service

import (
	"github.com/emarchenko/go-identity/internal/config"
	"github.com/emarchenko/go-identity/internal/logger"
	"github.com/emarchenko/go-identity/internal/store"
)

type Services struct {
	UserService  UserService
	TokenService TokenService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService:  NewUserService(storages.UserRepository, logger),
		TokenService: NewTokenService(cfg.Auth, logger),
	}
}
