package handlers

import (
	"context"

	"github.com/hongminglow/cms-accounts/internal/accounts"
	"github.com/hongminglow/cms-accounts/internal/models"
)

// AccountService is the subset of accounts.Manager the handlers use.
type AccountService interface {
	CreateUser(ctx context.Context, username, email, password string, extra accounts.ExtraFields) (models.Account, error)
	Authenticate(ctx context.Context, identifier, password string) (models.Account, error)
	AdminList(ctx context.Context) ([]models.AdminRow, error)
}

var _ AccountService = (*accounts.Manager)(nil)
