package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// UserRepository persists users in the users table.
type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	EmailID      string    `db:"email_id"`
	Name         string    `db:"name"`
	PhoneNumber  string    `db:"phone_number"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *user.User {
	return &user.User{
		EmailID:      r.EmailID,
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		PasswordHash: r.PasswordHash,
		Role:         user.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

const userColumns = `email_id, name, phone_number, password_hash, role, created_at, updated_at`

// Create inserts u. A duplicate email yields domain.ErrConflict. The stored
// timestamps are written back to u.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email_id, name, phone_number, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		u.EmailID,
		u.Name,
		u.PhoneNumber,
		u.PasswordHash,
		u.Role.String(),
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return translateError(err, "creating user")
	}

	return nil
}

// FindByEmail returns the user with the given email or domain.ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, emailID string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email_id = $1`

	var row userRow
	if err := r.db.GetContext(ctx, &row, query, emailID); err != nil {
		return nil, translateError(err, "finding user")
	}

	return row.toDomain(), nil
}

// Exists reports whether a user with the given email is registered.
func (r *UserRepository) Exists(ctx context.Context, emailID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email_id = $1)`, emailID); err != nil {
		return false, translateError(err, "checking user existence")
	}
	return exists, nil
}
