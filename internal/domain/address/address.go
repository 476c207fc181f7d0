// Package address holds the shipping address entity owned by a user.
package address

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

// Pincode bounds: a pincode is always six digits with no leading zero.
const (
	PincodeMin = 100000
	PincodeMax = 999999
)

// Address is a delivery address. UserID holds the owner's email.
type Address struct {
	ID          int64
	UserID      string
	StreetName  string
	City        string
	State       string
	Country     string
	Landmark    string
	PhoneNumber string
	Pincode     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Address entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. UserID is assigned by the service and not checked.
func (a *Address) Validate() error {
	if a == nil {
		return domain.NewValidationError("address", domain.MsgRequired)
	}

	fields := make(map[string]string)

	for name, value := range map[string]string{
		"street_name": a.StreetName,
		"city":        a.City,
		"state":       a.State,
		"country":     a.Country,
		"landmark":    a.Landmark,
	} {
		if strings.TrimSpace(value) == "" {
			fields[name] = domain.MsgBlank
		}
	}
	if !domain.IsPhoneNumber(a.PhoneNumber) {
		fields["phone_number"] = "must be exactly 10 digits"
	}
	if a.Pincode < PincodeMin || a.Pincode > PincodeMax {
		fields["pincode"] = fmt.Sprintf("must be exactly 6 digits, got %d", a.Pincode)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
