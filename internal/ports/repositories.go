package ports

import (
	"context"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
)

// UserRepository persists users. Implemented by the postgres adapter.
type UserRepository interface {
	// Create inserts u. Returns domain.ErrConflict on a duplicate email.
	Create(ctx context.Context, u *user.User) error

	// FindByEmail returns domain.ErrNotFound if no user has that email.
	FindByEmail(ctx context.Context, emailID string) (*user.User, error)

	// Exists reports whether a user with that email is stored.
	Exists(ctx context.Context, emailID string) (bool, error)
}

// AddressRepository persists addresses. Every query is scoped to an owner.
type AddressRepository interface {
	// Create inserts a and returns it with ID and timestamps populated.
	Create(ctx context.Context, a *address.Address) (*address.Address, error)

	// ListByUser returns the owner's addresses ordered by id. An empty
	// slice is not an error at this layer.
	ListByUser(ctx context.Context, userID string) ([]address.Address, error)

	// FindByIDAndUserID returns domain.ErrNotFound on a miss.
	FindByIDAndUserID(ctx context.Context, id int64, userID string) (*address.Address, error)

	// Update overwrites the row matching a.ID and a.UserID.
	// Returns domain.ErrNotFound if no row matched.
	Update(ctx context.Context, a *address.Address) (*address.Address, error)

	// Delete returns domain.ErrNotFound if no row matched.
	Delete(ctx context.Context, id int64, userID string) error
}

// WatchRepository persists watches together with their image rows.
type WatchRepository interface {
	List(ctx context.Context, filter watch.Filter) ([]watch.Watch, error)

	// FindByID returns domain.ErrNotFound on a miss.
	FindByID(ctx context.Context, id int64) (*watch.Watch, error)

	// Create inserts the watch and its images in one transaction.
	Create(ctx context.Context, w *watch.Watch) (*watch.Watch, error)

	// Update overwrites the watch and replaces its images in one transaction.
	// Returns domain.ErrNotFound if the watch does not exist.
	Update(ctx context.Context, id int64, w *watch.Watch) (*watch.Watch, error)

	// Delete returns domain.ErrNotFound if the watch does not exist.
	Delete(ctx context.Context, id int64) error
}
