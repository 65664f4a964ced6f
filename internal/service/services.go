package service

import (
	"github.com/MKhiriev/go-user-hub/internal/config"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/validators"
)

type Services struct {
	AuthService  AuthService
	UsersService UsersService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	userValidator := validators.NewUserValidator()

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, userValidator, cfg.App, logger),
		UsersService: NewUsersService(storages.UserRepository, storages.ImageStore, userValidator, logger),
	}
}
