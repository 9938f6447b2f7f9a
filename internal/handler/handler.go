package handler

import (
	"context"

	"github.com/ryuk156/backend-AOL/internal/config"
	"github.com/ryuk156/backend-AOL/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	credential   service.CredentialService
	verification service.VerificationService
	health       Pinger
	cfg          *config.Config
}

func New(credential service.CredentialService, verification service.VerificationService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{
		credential:   credential,
		verification: verification,
		health:       health,
		cfg:          cfg,
	}
}
