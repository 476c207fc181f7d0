package dto_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

func intPtr(i int) *int { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key and message.
func requireValidationField(t *testing.T, err error, field, wantMsg string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	got, ok := verr.Fields[field]
	if !ok {
		t.Fatalf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
	if wantMsg != "" && got != wantMsg {
		t.Errorf("Fields[%q] = %q, want %q", field, got, wantMsg)
	}
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		EmailID:     "jane@example.com",
		Name:        "Jane Doe",
		Password:    "s3cretpass",
		PhoneNumber: "9876543210",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(r *dto.RegisterRequest)
		wantField string
		wantMsg   string
	}{
		{name: "valid request passes", modify: func(*dto.RegisterRequest) {}},
		{name: "missing email", modify: func(r *dto.RegisterRequest) { r.EmailID = "" }, wantField: "email_id", wantMsg: domain.MsgRequired},
		{name: "malformed email", modify: func(r *dto.RegisterRequest) { r.EmailID = "jane.example.com" }, wantField: "email_id", wantMsg: "must be a valid email address"},
		{name: "padded email passes", modify: func(r *dto.RegisterRequest) { r.EmailID = "  Jane@Example.com " }},
		{name: "whitespace-only email", modify: func(r *dto.RegisterRequest) { r.EmailID = "   " }, wantField: "email_id", wantMsg: domain.MsgRequired},
		{name: "blank name", modify: func(r *dto.RegisterRequest) { r.Name = "  " }, wantField: "name", wantMsg: domain.MsgBlank},
		{name: "short password", modify: func(r *dto.RegisterRequest) { r.Password = "abc" }, wantField: "password", wantMsg: "must be at least 8 characters"},
		{name: "phone with letters", modify: func(r *dto.RegisterRequest) { r.PhoneNumber = "98765abcde" }, wantField: "phone_number", wantMsg: "must contain only digits"},
		{name: "phone too short", modify: func(r *dto.RegisterRequest) { r.PhoneNumber = "98765" }, wantField: "phone_number", wantMsg: "must be exactly 10 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRegisterRequest()
			tt.modify(&req)
			err := req.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.LoginRequest{EmailID: "jane@example.com", Password: "x"}).Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.LoginRequest{EmailID: "jane@example.com"}).Validate(), "password", domain.MsgRequired)

	padded := dto.LoginRequest{EmailID: " jane@example.com\t", Password: "x"}
	if err := padded.Validate(); err != nil {
		t.Fatalf("Validate() padded email = %v, want nil", err)
	}
	if padded.EmailID != "jane@example.com" {
		t.Errorf("EmailID = %q, want it trimmed", padded.EmailID)
	}
}

func TestRegisterRequest_Validate_TrimsEmail(t *testing.T) {
	t.Parallel()

	req := validRegisterRequest()
	req.EmailID = "  Jane@Example.com "
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if req.EmailID != "Jane@Example.com" {
		t.Errorf("EmailID = %q, want %q", req.EmailID, "Jane@Example.com")
	}
}

func validAddressRequest() dto.AddressRequest {
	return dto.AddressRequest{
		StreetName:  "12 Baker Street",
		City:        "Pune",
		State:       "Maharashtra",
		Country:     "India",
		Landmark:    "Near the clock tower",
		PhoneNumber: "9876543210",
		Pincode:     "411001",
	}
}

func TestAddressRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(r *dto.AddressRequest)
		wantField string
		wantMsg   string
	}{
		{name: "valid request passes", modify: func(*dto.AddressRequest) {}},
		{name: "blank street", modify: func(r *dto.AddressRequest) { r.StreetName = " \t" }, wantField: "street_name", wantMsg: domain.MsgBlank},
		{name: "missing city", modify: func(r *dto.AddressRequest) { r.City = "" }, wantField: "city", wantMsg: domain.MsgRequired},
		{name: "blank state", modify: func(r *dto.AddressRequest) { r.State = " " }, wantField: "state"},
		{name: "blank country", modify: func(r *dto.AddressRequest) { r.Country = " " }, wantField: "country"},
		{name: "blank landmark", modify: func(r *dto.AddressRequest) { r.Landmark = " " }, wantField: "landmark"},
		{name: "phone too long", modify: func(r *dto.AddressRequest) { r.PhoneNumber = "98765432101" }, wantField: "phone_number", wantMsg: "must be exactly 10 digits"},
		{name: "pincode five digits", modify: func(r *dto.AddressRequest) { r.Pincode = "41100" }, wantField: "pincode", wantMsg: "must be exactly 6 digits"},
		{name: "pincode not numeric", modify: func(r *dto.AddressRequest) { r.Pincode = "4110-1" }, wantField: "pincode", wantMsg: "must contain only digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validAddressRequest()
			tt.modify(&req)
			err := req.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestAddressRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	err := (&dto.AddressRequest{}).Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if len(verr.Fields) != 7 {
		t.Errorf("len(Fields) = %d, want 7: %v", len(verr.Fields), verr.Fields)
	}
}

func validWatchRequest() dto.WatchRequest {
	return dto.WatchRequest{
		Brand:           "Seiko",
		Name:            "Presage",
		Type:            "analog",
		ImagePaths:      []string{"/img/front.jpg"},
		StockQuantity:   intPtr(3),
		Price:           decimal.RequireFromString("199.99"),
		AvailableStatus: "available",
	}
}

func TestWatchRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(r *dto.WatchRequest)
		wantField string
		wantMsg   string
	}{
		{name: "valid request passes", modify: func(*dto.WatchRequest) {}},
		{name: "zero stock passes", modify: func(r *dto.WatchRequest) { r.StockQuantity = intPtr(0) }},
		{name: "missing brand", modify: func(r *dto.WatchRequest) { r.Brand = "" }, wantField: "brand", wantMsg: domain.MsgRequired},
		{name: "unknown type", modify: func(r *dto.WatchRequest) { r.Type = "sundial" }, wantField: "type", wantMsg: "must be one of: analog digital smart hybrid"},
		{name: "nil images", modify: func(r *dto.WatchRequest) { r.ImagePaths = nil }, wantField: "image_paths", wantMsg: domain.MsgRequired},
		{name: "empty images", modify: func(r *dto.WatchRequest) { r.ImagePaths = []string{} }, wantField: "image_paths", wantMsg: "must contain at least 1 items"},
		{name: "blank image path", modify: func(r *dto.WatchRequest) { r.ImagePaths = []string{"/a.jpg", ""} }, wantField: "image_paths[1]", wantMsg: domain.MsgBlank},
		{name: "missing stock", modify: func(r *dto.WatchRequest) { r.StockQuantity = nil }, wantField: "stock_quantity", wantMsg: domain.MsgRequired},
		{name: "negative stock", modify: func(r *dto.WatchRequest) { r.StockQuantity = intPtr(-2) }, wantField: "stock_quantity", wantMsg: "must be greater than or equal to 0"},
		{name: "negative price", modify: func(r *dto.WatchRequest) { r.Price = decimal.NewFromInt(-5) }, wantField: "price", wantMsg: "must be greater than 0"},
		{name: "missing price", modify: func(r *dto.WatchRequest) { r.Price = decimal.Zero }, wantField: "price", wantMsg: domain.MsgRequired},
		{name: "largest stock passes", modify: func(r *dto.WatchRequest) { r.StockQuantity = intPtr(2147483647) }},
		{name: "stock beyond integer column", modify: func(r *dto.WatchRequest) { r.StockQuantity = intPtr(3000000000) }, wantField: "stock_quantity", wantMsg: "must be at most 2147483647"},
		{name: "largest price passes", modify: func(r *dto.WatchRequest) { r.Price = decimal.RequireFromString("9999999999.99") }},
		{name: "trailing zeros pass", modify: func(r *dto.WatchRequest) { r.Price = decimal.RequireFromString("12.500") }},
		{name: "sub-cent price", modify: func(r *dto.WatchRequest) { r.Price = decimal.RequireFromString("0.001") }, wantField: "price", wantMsg: "must have at most 2 decimal places"},
		{name: "three decimal places", modify: func(r *dto.WatchRequest) { r.Price = decimal.RequireFromString("12.345") }, wantField: "price", wantMsg: "must have at most 2 decimal places"},
		{name: "price beyond numeric column", modify: func(r *dto.WatchRequest) { r.Price = decimal.RequireFromString("99999999999") }, wantField: "price", wantMsg: "must be less than 10000000000"},
		{name: "price at column limit", modify: func(r *dto.WatchRequest) { r.Price = decimal.New(1, 10) }, wantField: "price", wantMsg: "must be less than 10000000000"},
		{name: "bad status", modify: func(r *dto.WatchRequest) { r.AvailableStatus = "sold" }, wantField: "available_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validWatchRequest()
			tt.modify(&req)
			err := req.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField, tt.wantMsg)
		})
	}
}

func TestWatchFilterQuery_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.WatchFilterQuery{}).Validate(); err != nil {
		t.Errorf("empty filter: Validate() = %v, want nil", err)
	}
	if err := (&dto.WatchFilterQuery{Brand: "Casio", Type: "digital", Status: "unavailable"}).Validate(); err != nil {
		t.Errorf("full filter: Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.WatchFilterQuery{Type: "pocket"}).Validate(), "query.type", "")
	requireValidationField(t, (&dto.WatchFilterQuery{Status: "gone"}).Validate(), "query.status", "")
}
