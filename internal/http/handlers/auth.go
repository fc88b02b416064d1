package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/cms-accounts/internal/accounts"
	"github.com/hongminglow/cms-accounts/internal/auth"
	"github.com/hongminglow/cms-accounts/internal/http/respond"
	"github.com/hongminglow/cms-accounts/internal/models/dto"
	"github.com/hongminglow/cms-accounts/internal/storage"
)

// AuthHandler owns the register/login endpoints.
type AuthHandler struct {
	accounts AccountService
	tokens   *auth.TokenManager
	log      *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc AccountService, tokens *auth.TokenManager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: svc, tokens: tokens, log: log}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/register", h.handleRegister)
	mux.HandleFunc("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	extra := accounts.ExtraFields{
		FullName: req.FullName,
		City:     req.City,
		State:    req.State,
		Address:  req.Address,
		Country:  req.Country,
		Phone:    req.Phone,
		Pincode:  req.Pincode,
	}
	created, err := h.accounts.CreateUser(r.Context(), strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), req.Password, extra)
	if err != nil {
		h.writeAccountError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, "account created successfully", created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Identifier) == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "identifier and password are required")
		return
	}
	account, err := h.accounts.Authenticate(r.Context(), strings.TrimSpace(req.Identifier), req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.Error("login failed", zap.String("identifier", req.Identifier), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch account")
		return
	}
	token, err := h.tokens.Generate(account)
	if err != nil {
		h.log.Error("generate token", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{Token: token, Account: account})
}

func (h *AuthHandler) writeAccountError(w http.ResponseWriter, err error) {
	var (
		verr *accounts.ValidationError
		vale *accounts.ValueError
	)
	switch {
	case errors.As(err, &verr):
		respond.ErrorData(w, http.StatusBadRequest, verr.Message, dto.ValidationFailure{
			Field:  verr.Field,
			Kind:   string(verr.Kind),
			Detail: string(verr.Detail),
		})
	case errors.As(err, &vale):
		respond.ErrorData(w, http.StatusBadRequest, vale.Message, dto.ValidationFailure{Kind: string(vale.Kind)})
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, "account already exists")
	default:
		h.log.Error("create account", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to create account")
	}
}
