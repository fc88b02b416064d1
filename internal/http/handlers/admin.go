package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/cms-accounts/internal/auth"
	"github.com/hongminglow/cms-accounts/internal/http/respond"
)

// AdminHandler serves the staff-only account listing.
type AdminHandler struct {
	accounts AccountService
	tokens   *auth.TokenManager
	log      *zap.Logger
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(svc AccountService, tokens *auth.TokenManager, log *zap.Logger) *AdminHandler {
	return &AdminHandler{accounts: svc, tokens: tokens, log: log}
}

// Register attaches admin routes to the mux.
func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/accounts", h.handleList)
}

func (h *AdminHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	claims, err := h.tokens.Parse(strings.TrimSpace(raw))
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}
	if !claims.IsStaff {
		respond.Error(w, http.StatusForbidden, "staff access required")
		return
	}

	rows, err := h.accounts.AdminList(r.Context())
	if err != nil {
		h.log.Error("admin list", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	respond.JSON(w, http.StatusOK, "accounts", rows)
}
