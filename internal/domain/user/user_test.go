package user

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

func validUser() User {
	return User{
		EmailID:     "jane@example.com",
		Name:        "Jane Doe",
		PhoneNumber: "9876543210",
		Role:        RoleCustomer,
	}
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*User)
		wantField string
	}{
		{name: "valid user passes", modify: func(_ *User) {}},
		{name: "empty role passes", modify: func(u *User) { u.Role = "" }},
		{name: "malformed email", modify: func(u *User) { u.EmailID = "jane" }, wantField: "email_id"},
		{name: "blank name", modify: func(u *User) { u.Name = "  " }, wantField: "name"},
		{name: "short phone", modify: func(u *User) { u.PhoneNumber = "4567890" }, wantField: "phone_number"},
		{name: "unknown role", modify: func(u *User) { u.Role = "root" }, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := validUser()
			tt.modify(&u)

			err := u.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestUser_Validate_Nil(t *testing.T) {
	t.Parallel()

	var u *User
	if err := u.Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate(nil) = %v, want ErrValidation", err)
	}
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleCustomer, RoleAdmin} {
		if !r.IsValid() {
			t.Errorf("Role(%q).IsValid() = false, want true", r)
		}
	}
	if Role("Admin").IsValid() {
		t.Error(`Role("Admin").IsValid() = true, want false`)
	}
}
