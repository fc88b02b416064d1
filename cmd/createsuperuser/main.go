// Command createsuperuser creates an account with staff and superuser
// privileges directly against the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hongminglow/cms-accounts/internal/accounts"
	"github.com/hongminglow/cms-accounts/internal/auth"
	"github.com/hongminglow/cms-accounts/internal/config"
	"github.com/hongminglow/cms-accounts/internal/logging"
	postgres "github.com/hongminglow/cms-accounts/internal/storage/postgres"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "createsuperuser: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	username string
	email    string
	password string
	extra    accounts.ExtraFields
}

// parseFlags reads the command line, falling back to SUPERUSER_PASSWORD from
// getenv when -password is not given.
func parseFlags(args []string, getenv func(string) string) (options, error) {
	fs := flag.NewFlagSet("createsuperuser", flag.ContinueOnError)
	username := fs.String("username", "", "login name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (defaults to $SUPERUSER_PASSWORD)")
	fullName := fs.String("full-name", "", "first and last name")
	phone := fs.Int64("phone", 0, "10 digit phone number")
	pincode := fs.Int64("pincode", 0, "6 digit pincode")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *password == "" {
		*password = getenv("SUPERUSER_PASSWORD")
	}
	return options{
		username: *username,
		email:    *email,
		password: *password,
		extra: accounts.ExtraFields{
			FullName: *fullName,
			Phone:    *phone,
			Pincode:  *pincode,
		},
	}, nil
}

// loadOptions reads .env before the flags so SUPERUSER_PASSWORD may live there.
func loadOptions(args []string) (options, error) {
	_ = godotenv.Load()
	return parseFlags(args, os.Getenv)
}

func run(args []string) error {
	opts, err := loadOptions(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := postgres.NewAccountStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer store.Close()

	manager := accounts.NewManager(store, auth.NewBcryptHasher(cfg.BcryptCost), logger)
	created, err := manager.CreateSuperuser(ctx, opts.username, opts.email, opts.password, opts.extra)
	if err != nil {
		return err
	}
	logger.Info("superuser created", zap.String("username", created.String()))
	return nil
}
