// Package user holds the registered customer entity.
package user

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

// Role controls which endpoints a user may call.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User is a registered account. EmailID is the primary key.
type User struct {
	EmailID      string
	Name         string
	PhoneNumber  string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks business rules for the User entity.
// The password hash is not checked here; it is set by the service after validation.
func (u *User) Validate() error {
	if u == nil {
		return domain.NewValidationError("user", domain.MsgRequired)
	}

	fields := make(map[string]string)

	if !domain.IsEmail(u.EmailID) {
		fields["email_id"] = "must be a valid email address"
	}
	if strings.TrimSpace(u.Name) == "" {
		fields["name"] = domain.MsgBlank
	}
	if !domain.IsPhoneNumber(u.PhoneNumber) {
		fields["phone_number"] = "must be exactly 10 digits"
	}
	if u.Role != "" && !u.Role.IsValid() {
		fields["role"] = "invalid: " + string(u.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
