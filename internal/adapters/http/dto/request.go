package dto

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

// RegisterRequest is the JSON body for user registration.
type RegisterRequest struct {
	EmailID     string `json:"email_id"     validate:"required,email,max=255"`
	Name        string `json:"name"         validate:"required,notblank,max=255"`
	Password    string `json:"password"     validate:"required,min=8,max=72"`
	PhoneNumber string `json:"phone_number" validate:"required,digits,len=10"`
}

// Validate trims the email and checks field presence and formats.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	r.EmailID = strings.TrimSpace(r.EmailID)
	return validateStruct(r)
}

// LoginRequest is the JSON body for password login.
type LoginRequest struct {
	EmailID  string `json:"email_id" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	r.EmailID = strings.TrimSpace(r.EmailID)
	return validateStruct(r)
}

// AddressRequest is the JSON body for creating or replacing an address.
// Pincode travels as a string so leading-digit checks happen before parsing.
type AddressRequest struct {
	StreetName  string `json:"street_name"  validate:"required,notblank,max=255"`
	City        string `json:"city"         validate:"required,notblank,max=100"`
	State       string `json:"state"        validate:"required,notblank,max=100"`
	Country     string `json:"country"      validate:"required,notblank,max=100"`
	Landmark    string `json:"landmark"     validate:"required,notblank,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,digits,len=10"`
	Pincode     string `json:"pincode"      validate:"required,digits,len=6"`
}

// Validate checks that every field is present and well formed.
// Returns a *domain.ValidationError listing each failing field.
func (r *AddressRequest) Validate() error {
	return validateStruct(r)
}

// WatchRequest is the JSON body for creating or replacing a catalog watch.
type WatchRequest struct {
	Brand           string          `json:"brand"            validate:"required,notblank,max=100"`
	Name            string          `json:"name"             validate:"required,notblank,max=255"`
	Type            string          `json:"type"             validate:"required,oneof=analog digital smart hybrid"`
	Description     string          `json:"description"      validate:"max=2000"`
	ImagePaths      []string        `json:"image_paths"      validate:"required,min=1,dive,notblank"`
	StockQuantity   *int            `json:"stock_quantity"   validate:"required,gte=0,lte=2147483647"`
	Price           decimal.Decimal `json:"price"            validate:"required,gt=0"`
	AvailableStatus string          `json:"available_status" validate:"required,oneof=available unavailable"`
}

// maxPrice is the exclusive upper bound of a NUMERIC(12,2) price.
var maxPrice = decimal.New(1, 10)

// Validate checks the watch fields. Prices must fit NUMERIC(12,2): at most
// two decimal places and below maxPrice.
func (r *WatchRequest) Validate() error {
	err := validateStruct(r)
	var verr *domain.ValidationError
	if err != nil && !errors.As(err, &verr) {
		return err
	}

	fields := make(map[string]string)
	if verr != nil {
		fields = verr.Fields
	}
	if _, failed := fields["price"]; !failed {
		switch {
		case !r.Price.Equal(r.Price.Truncate(2)):
			fields["price"] = "must have at most 2 decimal places"
		case r.Price.GreaterThanOrEqual(maxPrice):
			fields["price"] = "must be less than " + maxPrice.String()
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

// WatchFilterQuery holds the optional query parameters of the watch listing.
type WatchFilterQuery struct {
	Brand  string `json:"brand"  validate:"max=100"`
	Type   string `json:"type"   validate:"omitempty,oneof=analog digital smart hybrid"`
	Status string `json:"status" validate:"omitempty,oneof=available unavailable"`
}

// Validate checks the filter values. Field errors are keyed "query.<name>".
func (q *WatchFilterQuery) Validate() error {
	err := validateStruct(q)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	fields := make(map[string]string, len(verr.Fields))
	for k, msg := range verr.Fields {
		fields["query."+k] = msg
	}
	return &domain.ValidationError{Fields: fields}
}
