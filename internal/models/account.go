package models

import "time"

// Account is the persisted user identity of the CMS.
//
// FirstName and LastName are derived from FullName on every save and are
// never taken from input. Field order matters: validation reports the first
// failing field in declaration order.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,max=150,username"`
	Email        string    `json:"email" validate:"required,max=254,email"`
	FullName     string    `json:"full_name" validate:"max=150,full_name"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	City         string    `json:"city" validate:"max=100"`
	State        string    `json:"state" validate:"max=100"`
	Address      string    `json:"address" validate:"max=300"`
	Phone        int64     `json:"phone" validate:"phone"`
	Pincode      int64     `json:"pincode" validate:"pincode"`
	Country      string    `json:"country" validate:"max=100"`
	Password     string    `json:"-"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`
}

func (a Account) String() string {
	return a.Username
}

// AdminRow is the read-only projection shown in the admin account listing.
type AdminRow struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Address  string `json:"address"`
	IsStaff  bool   `json:"is_staff"`
}

// AdminRow projects the account onto the admin listing columns.
func (a Account) AdminRow() AdminRow {
	return AdminRow{
		Username: a.Username,
		Email:    a.Email,
		FullName: a.FullName,
		City:     a.City,
		State:    a.State,
		Address:  a.Address,
		IsStaff:  a.IsStaff,
	}
}
