// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
)

// Messages returned in MessageResponse bodies.
const (
	MsgAddressAdded   = "Address added successfully"
	MsgAddressUpdated = "Address updated successfully"
	MsgAddressDeleted = "Address deleted successfully"
	MsgWatchDeleted   = "Watch deleted successfully"
)

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisteredMessage builds the registration acknowledgement for emailID.
func RegisteredMessage(emailID string) MessageResponse {
	return MessageResponse{Message: "User registered successfully with email id: " + emailID}
}

// UserProfileResponse is the public view of a user. The password hash is
// never serialised.
type UserProfileResponse struct {
	EmailID     string `json:"email_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

// ToUserProfileResponse converts a domain User to its public view.
func ToUserProfileResponse(u *user.User) UserProfileResponse {
	return UserProfileResponse{
		EmailID:     u.EmailID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role.String(),
	}
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

// ToTokenResponse converts an issued access token.
func ToTokenResponse(t *user.AccessToken) TokenResponse {
	return TokenResponse{
		AccessToken: t.Value,
		TokenType:   t.TokenType,
		ExpiresAt:   t.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// AddressResponse mirrors AddressRequest plus the generated id.
type AddressResponse struct {
	AddressID   int64  `json:"address_id"`
	StreetName  string `json:"street_name"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Landmark    string `json:"landmark"`
	PhoneNumber string `json:"phone_number"`
	Pincode     string `json:"pincode"`
}

// ToAddressResponse converts a domain Address.
func ToAddressResponse(a *address.Address) AddressResponse {
	return AddressResponse{
		AddressID:   a.ID,
		StreetName:  a.StreetName,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		Landmark:    a.Landmark,
		PhoneNumber: a.PhoneNumber,
		Pincode:     strconv.Itoa(a.Pincode),
	}
}

// ToAddressListResponse converts the user's addresses, preserving order.
func ToAddressListResponse(addresses []address.Address) []AddressResponse {
	items := make([]AddressResponse, len(addresses))
	for i := range addresses {
		items[i] = ToAddressResponse(&addresses[i])
	}
	return items
}

// WatchResponse represents a single catalog watch.
type WatchResponse struct {
	WatchID         int64           `json:"watch_id"`
	Brand           string          `json:"brand"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	ImagePaths      []string        `json:"image_paths"`
	StockQuantity   int             `json:"stock_quantity"`
	Price           decimal.Decimal `json:"price"`
	AvailableStatus string          `json:"available_status"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// WatchListResponse wraps a watch listing.
type WatchListResponse struct {
	Watches []WatchResponse `json:"watches"`
	Count   int             `json:"count"`
}

// ToWatchResponse converts a domain Watch.
func ToWatchResponse(w *watch.Watch) WatchResponse {
	images := w.ImagePaths
	if images == nil {
		images = []string{}
	}
	return WatchResponse{
		WatchID:         w.ID,
		Brand:           w.Brand,
		Name:            w.Name,
		Type:            w.Type.String(),
		Description:     w.Description,
		ImagePaths:      images,
		StockQuantity:   w.StockQuantity,
		Price:           w.Price,
		AvailableStatus: w.AvailableStatus.String(),
		CreatedAt:       w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       w.UpdatedAt.Format(time.RFC3339),
	}
}

// ToWatchListResponse converts a slice of watches.
func ToWatchListResponse(watches []watch.Watch) WatchListResponse {
	items := make([]WatchResponse, len(watches))
	for i := range watches {
		items[i] = ToWatchResponse(&watches[i])
	}
	return WatchListResponse{
		Watches: items,
		Count:   len(items),
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
