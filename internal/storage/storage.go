package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/cms-accounts/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on username, email or phone.
var ErrAlreadyExists = errors.New("record already exists")

// AccountStore captures the persistence operations the account manager needs.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
}
