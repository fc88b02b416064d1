package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/hongminglow/cms-accounts/internal/accounts"
	"github.com/hongminglow/cms-accounts/internal/config"
	"github.com/hongminglow/cms-accounts/internal/models"
)

type stubService struct{}

func (stubService) CreateUser(context.Context, string, string, string, accounts.ExtraFields) (models.Account, error) {
	return models.Account{}, nil
}

func (stubService) Authenticate(context.Context, string, string) (models.Account, error) {
	return models.Account{}, accounts.ErrInvalidCredentials
}

func (stubService) AdminList(context.Context) ([]models.AdminRow, error) {
	return nil, nil
}

func TestServerRoutesThroughMiddleware(t *testing.T) {
	cfg := config.Config{
		Port:        "0",
		JWTSecret:   "secret",
		JWTIssuer:   "cms-accounts",
		JWTTTL:      time.Minute,
		CORSOrigins: []string{"*"},
	}
	srv := New(cfg, stubService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://cms.example")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
