package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/cms-accounts/internal/models"
	"github.com/hongminglow/cms-accounts/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.AccountStore interface at compile time.
var _ storage.AccountStore = (*Store)(nil)

const uniqueViolation = "23505"

const accountColumns = `id, username, email, full_name, first_name, last_name, city, state, address,
	phone, pincode, country, password_hash, is_staff, is_superuser, is_active, date_joined`

// Store provides Postgres-backed persistence for accounts.
type Store struct {
	pool *pgxpool.Pool
}

// NewAccountStore creates a new Store and runs migrations.
func NewAccountStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// migrations create the accounts table. The UNIQUE constraints on username,
// email and phone already carry their own indexes.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		email VARCHAR(254) UNIQUE NOT NULL,
		full_name VARCHAR(150) NOT NULL,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		city VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		address VARCHAR(300) NOT NULL DEFAULT '',
		phone BIGINT UNIQUE NOT NULL CHECK (phone BETWEEN 1000000000 AND 9999999999),
		pincode INTEGER NOT NULL CHECK (pincode BETWEEN 100000 AND 999999),
		country VARCHAR(100) NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateAccount inserts a new account row.
func (s *Store) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	query := `
		INSERT INTO accounts (username, email, full_name, first_name, last_name, city, state, address,
			phone, pincode, country, password_hash, is_staff, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + accountColumns
	row := s.pool.QueryRow(ctx, query,
		account.Username, account.Email, account.FullName, account.FirstName, account.LastName,
		account.City, account.State, account.Address, account.Phone, account.Pincode, account.Country,
		account.PasswordHash, account.IsStaff, account.IsSuperuser, account.IsActive,
	)
	return mapWriteErr(scanAccount(row))
}

// UpdateAccount overwrites every mutable column of an existing account. An
// empty password hash keeps the stored one.
func (s *Store) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	query := `
		UPDATE accounts SET username = $2, email = $3, full_name = $4, first_name = $5, last_name = $6,
			city = $7, state = $8, address = $9, phone = $10, pincode = $11, country = $12,
			password_hash = COALESCE(NULLIF($13, ''), password_hash),
			is_staff = $14, is_superuser = $15, is_active = $16
		WHERE id = $1
		RETURNING ` + accountColumns
	row := s.pool.QueryRow(ctx, query,
		account.ID, account.Username, account.Email, account.FullName, account.FirstName, account.LastName,
		account.City, account.State, account.Address, account.Phone, account.Pincode, account.Country,
		account.PasswordHash, account.IsStaff, account.IsSuperuser, account.IsActive,
	)
	return mapWriteErr(scanAccount(row))
}

// FindByUsername fetches an account by username.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
	return scanAccount(row)
}

// FindByEmail fetches an account by email address.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

// FindByUsernameOrEmail fetches the first account matching the identifier as username or email.
func (s *Store) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.Account, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE username = $1 OR email = $1 LIMIT 1`, identifier)
	return scanAccount(row)
}

// ListAccounts returns all accounts ordered by username.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return out, nil
}

func mapWriteErr(account models.Account, err error) (models.Account, error) {
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.Account{}, storage.ErrAlreadyExists
		}
		return models.Account{}, err
	}
	return account, nil
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var a models.Account
	if err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.FullName, &a.FirstName, &a.LastName, &a.City, &a.State, &a.Address,
		&a.Phone, &a.Pincode, &a.Country, &a.PasswordHash, &a.IsStaff, &a.IsSuperuser, &a.IsActive, &a.DateJoined,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, storage.ErrNotFound
		}
		return models.Account{}, err
	}
	return a, nil
}
