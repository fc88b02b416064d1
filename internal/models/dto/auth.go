package dto

import "github.com/hongminglow/cms-accounts/internal/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Address  string `json:"address"`
	Country  string `json:"country"`
	Phone    int64  `json:"phone"`
	Pincode  int64  `json:"pincode"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type LoginResponse struct {
	Token   string         `json:"token"`
	Account models.Account `json:"account"`
}

// ValidationFailure describes which field was rejected and why.
type ValidationFailure struct {
	Field  string `json:"field,omitempty"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}
