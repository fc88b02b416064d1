package accounts

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hongminglow/cms-accounts/internal/models"
)

type mockStore struct {
	mock.Mock
}

type accountFn func(context.Context, models.Account) models.Account

func (m *mockStore) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	args := m.Called(ctx, account)
	if fn, ok := args.Get(0).(accountFn); ok {
		return fn(ctx, account), args.Error(1)
	}
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *mockStore) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	args := m.Called(ctx, account)
	if fn, ok := args.Get(0).(accountFn); ok {
		return fn(ctx, account), args.Error(1)
	}
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *mockStore) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *mockStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *mockStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.Account, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *mockStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Account)
	return list, args.Error(1)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(hash, raw string) error {
	return m.Called(hash, raw).Error(0)
}

// echoCreate makes CreateAccount return its input with an ID assigned.
func echoCreate(store *mockStore, id int64) {
	store.On("CreateAccount", mock.Anything, mock.Anything).
		Return(accountFn(func(_ context.Context, a models.Account) models.Account {
			a.ID = id
			return a
		}), nil).Once()
}
