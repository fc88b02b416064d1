package accounts

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hongminglow/cms-accounts/internal/models"
	"github.com/hongminglow/cms-accounts/internal/storage"
)

// ErrInvalidCredentials is returned by Authenticate for unknown identifiers,
// wrong passwords and inactive accounts alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordHasher turns raw passwords into stored hashes.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) error
}

// PersistFunc writes a cleaned account and returns the stored version.
type PersistFunc func(ctx context.Context, account models.Account) (models.Account, error)

// ExtraFields carries optional account attributes for CreateUser and
// CreateSuperuser. Nil flags take the operation's default.
type ExtraFields struct {
	FullName    string
	City        string
	State       string
	Address     string
	Country     string
	Phone       int64
	Pincode     int64
	IsStaff     *bool
	IsSuperuser *bool
	IsActive    *bool
}

func (e ExtraFields) apply(a *models.Account) {
	a.FullName = e.FullName
	a.City = e.City
	a.State = e.State
	a.Address = e.Address
	a.Country = e.Country
	a.Phone = e.Phone
	a.Pincode = e.Pincode
	a.IsActive = true
	if e.IsStaff != nil {
		a.IsStaff = *e.IsStaff
	}
	if e.IsSuperuser != nil {
		a.IsSuperuser = *e.IsSuperuser
	}
	if e.IsActive != nil {
		a.IsActive = *e.IsActive
	}
}

// Manager creates, saves and authenticates accounts. It is safe for
// concurrent use.
type Manager struct {
	store   storage.AccountStore
	hasher  PasswordHasher
	cleaner *Cleaner
	log     *zap.Logger
}

// NewManager wires the manager to its persistence and hashing collaborators.
func NewManager(store storage.AccountStore, hasher PasswordHasher, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, hasher: hasher, cleaner: NewCleaner(), log: log}
}

// Clean validates the account without touching any collaborator.
func (m *Manager) Clean(a *models.Account) error {
	return m.cleaner.Clean(a)
}

// NormalizeAndSave validates the account, derives its name parts, hashes a
// pending raw password and finally hands the record to persist. Nothing is
// hashed or persisted unless validation passes.
func (m *Manager) NormalizeAndSave(ctx context.Context, a *models.Account, persist PersistFunc) (models.Account, error) {
	return m.save(ctx, a, persist, false)
}

// Save persists the account through the store, inserting when it has no ID
// yet and updating otherwise.
func (m *Manager) Save(ctx context.Context, a *models.Account) (models.Account, error) {
	persist := m.store.UpdateAccount
	if a.ID == 0 {
		persist = m.store.CreateAccount
	}
	return m.save(ctx, a, persist, false)
}

func (m *Manager) save(ctx context.Context, a *models.Account, persist PersistFunc, requirePassword bool) (models.Account, error) {
	if err := m.cleaner.CleanFields(a); err != nil {
		return models.Account{}, err
	}
	Normalize(a)
	if requirePassword || a.Password != "" {
		if err := ValidatePasswordStrength(a.Password); err != nil {
			return models.Account{}, err
		}
	}

	if a.Password != "" {
		hash, err := m.hasher.Hash(a.Password)
		if err != nil {
			return models.Account{}, fmt.Errorf("hash password: %w", err)
		}
		a.PasswordHash = hash
		a.Password = ""
	}

	saved, err := persist(ctx, *a)
	if err != nil {
		return models.Account{}, fmt.Errorf("save account %s: %w", a.Username, err)
	}
	return saved, nil
}

// CreateUser builds a new account from the given credentials and extra
// fields and persists it. The password is mandatory.
func (m *Manager) CreateUser(ctx context.Context, username, email, password string, extra ExtraFields) (models.Account, error) {
	if email == "" {
		return models.Account{}, ErrMissingEmail
	}
	account := models.Account{
		Username: username,
		Email:    NormalizeEmail(email),
		Password: password,
	}
	extra.apply(&account)

	created, err := m.save(ctx, &account, m.store.CreateAccount, true)
	if err != nil {
		return models.Account{}, err
	}
	m.log.Info("account created",
		zap.Int64("id", created.ID),
		zap.String("username", created.Username),
		zap.String("role", created.Role()),
	)
	return created, nil
}

// CreateSuperuser creates an account with staff and superuser flags set.
// Callers may not clear either flag.
func (m *Manager) CreateSuperuser(ctx context.Context, username, email, password string, extra ExtraFields) (models.Account, error) {
	if extra.IsStaff == nil {
		extra.IsStaff = boolPtr(true)
	}
	if extra.IsSuperuser == nil {
		extra.IsSuperuser = boolPtr(true)
	}
	if !*extra.IsStaff {
		return models.Account{}, ErrSuperuserRequiresStaff
	}
	if !*extra.IsSuperuser {
		return models.Account{}, ErrSuperuserRequiresSuperuser
	}
	return m.CreateUser(ctx, username, email, password, extra)
}

// Authenticate resolves identifier as username or email and checks the
// password against the stored hash.
func (m *Manager) Authenticate(ctx context.Context, identifier, password string) (models.Account, error) {
	account, err := m.store.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Account{}, ErrInvalidCredentials
		}
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}
	if err := m.hasher.Compare(account.PasswordHash, password); err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	if !account.IsActive {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// AdminList returns the admin listing projection of every account.
func (m *Manager) AdminList(ctx context.Context) ([]models.AdminRow, error) {
	list, err := m.store.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	rows := make([]models.AdminRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, a.AdminRow())
	}
	return rows, nil
}

func boolPtr(v bool) *bool {
	return &v
}
