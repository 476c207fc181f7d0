package ports

import (
	"context"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
)

// UserService defines the service port for account operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type UserService interface {
	// Register validates and persists a new user, hashing the plain password.
	// Returns the stored email id.
	// Returns domain.ErrConflict if the email is already registered.
	Register(ctx context.Context, u *user.User, password string) (string, error)

	// GetProfile returns the user identified by emailID.
	// Returns domain.ErrForbidden if the requester is someone else and
	// domain.ErrNotFound if no such user exists.
	GetProfile(ctx context.Context, requester user.Principal, emailID string) (*user.User, error)
}

// AuthService issues and revokes access tokens.
type AuthService interface {
	// Login checks credentials and returns a signed access token.
	// Returns domain.ErrUnauthorized for an unknown email or wrong password.
	Login(ctx context.Context, emailID, password string) (*user.AccessToken, error)

	// Logout revokes the token the principal was authenticated with.
	Logout(ctx context.Context, p user.Principal) error

	// Authenticate verifies a raw bearer token and returns its principal.
	// Returns domain.ErrUnauthorized for invalid, expired or revoked tokens.
	Authenticate(ctx context.Context, rawToken string) (*user.Principal, error)
}

// AddressService manages the delivery addresses of a single owner.
// The owner is always the authenticated user's email.
type AddressService interface {
	// Save validates and stores a new address for owner.
	Save(ctx context.Context, owner string, a *address.Address) (*address.Address, error)

	// List returns the owner's addresses ordered by id.
	// Returns domain.ErrNotFound when the owner has none.
	List(ctx context.Context, owner string) ([]address.Address, error)

	// FindByIDAndUserID returns one address if it belongs to owner.
	// Returns domain.ErrNotFound otherwise.
	FindByIDAndUserID(ctx context.Context, id int64, owner string) (*address.Address, error)

	// Update replaces the fields of an existing address.
	// Returns domain.ErrNotFound if the address does not exist for owner.
	Update(ctx context.Context, owner string, id int64, a *address.Address) (*address.Address, error)

	// Delete removes an address.
	// Returns domain.ErrNotFound if the address does not exist for owner.
	Delete(ctx context.Context, owner string, id int64) error
}

// WatchService defines the service port for the watch catalog.
type WatchService interface {
	// ListWatches returns watches matching filter. A zero Filter lists all.
	ListWatches(ctx context.Context, filter watch.Filter) ([]watch.Watch, error)

	// GetWatch returns a single watch with its image paths.
	// Returns domain.ErrNotFound if the watch does not exist.
	GetWatch(ctx context.Context, id int64) (*watch.Watch, error)

	// CreateWatch validates and stores a new watch.
	CreateWatch(ctx context.Context, w *watch.Watch) (*watch.Watch, error)

	// UpdateWatch replaces an existing watch including its images.
	// Returns domain.ErrNotFound if the watch does not exist.
	UpdateWatch(ctx context.Context, id int64, w *watch.Watch) (*watch.Watch, error)

	// DeleteWatch removes a watch and its images.
	// Returns domain.ErrNotFound if the watch does not exist.
	DeleteWatch(ctx context.Context, id int64) error
}
