package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// AddressRepository persists user addresses. Every lookup is scoped to the
// owning user.
type AddressRepository struct {
	db *sqlx.DB
}

var _ ports.AddressRepository = (*AddressRepository)(nil)

// NewAddressRepository creates a new address repository.
func NewAddressRepository(db *sqlx.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

type addressRow struct {
	ID          int64     `db:"address_id"`
	UserID      string    `db:"user_id"`
	StreetName  string    `db:"street_name"`
	City        string    `db:"city"`
	State       string    `db:"state"`
	Country     string    `db:"country"`
	Landmark    string    `db:"landmark"`
	PhoneNumber string    `db:"phone_number"`
	Pincode     int       `db:"pincode"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r addressRow) toDomain() address.Address {
	return address.Address{
		ID:          r.ID,
		UserID:      r.UserID,
		StreetName:  r.StreetName,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		Landmark:    r.Landmark,
		PhoneNumber: r.PhoneNumber,
		Pincode:     r.Pincode,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

const addressColumns = `address_id, user_id, street_name, city, state, country, landmark, phone_number, pincode, created_at, updated_at`

// Create inserts a and returns the stored row with its generated id.
func (r *AddressRepository) Create(ctx context.Context, a *address.Address) (*address.Address, error) {
	query := `
		INSERT INTO addresses (user_id, street_name, city, state, country, landmark, phone_number, pincode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + addressColumns

	var row addressRow
	err := r.db.GetContext(ctx, &row, query,
		a.UserID,
		a.StreetName,
		a.City,
		a.State,
		a.Country,
		a.Landmark,
		a.PhoneNumber,
		a.Pincode,
	)
	if err != nil {
		return nil, translateError(err, "creating address")
	}

	saved := row.toDomain()
	return &saved, nil
}

// ListByUser returns the user's addresses ordered by id.
func (r *AddressRepository) ListByUser(ctx context.Context, userID string) ([]address.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY address_id`

	var rows []addressRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, translateError(err, "listing addresses")
	}

	addresses := make([]address.Address, 0, len(rows))
	for _, row := range rows {
		addresses = append(addresses, row.toDomain())
	}
	return addresses, nil
}

// FindByIDAndUserID returns the address or domain.ErrNotFound when it does
// not exist or belongs to another user.
func (r *AddressRepository) FindByIDAndUserID(ctx context.Context, id int64, userID string) (*address.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE address_id = $1 AND user_id = $2`

	var row addressRow
	if err := r.db.GetContext(ctx, &row, query, id, userID); err != nil {
		return nil, translateError(err, "finding address")
	}

	found := row.toDomain()
	return &found, nil
}

// Update overwrites the address identified by a.ID and a.UserID.
func (r *AddressRepository) Update(ctx context.Context, a *address.Address) (*address.Address, error) {
	query := `
		UPDATE addresses
		SET street_name = $3, city = $4, state = $5, country = $6, landmark = $7,
		    phone_number = $8, pincode = $9, updated_at = NOW()
		WHERE address_id = $1 AND user_id = $2
		RETURNING ` + addressColumns

	var row addressRow
	err := r.db.GetContext(ctx, &row, query,
		a.ID,
		a.UserID,
		a.StreetName,
		a.City,
		a.State,
		a.Country,
		a.Landmark,
		a.PhoneNumber,
		a.Pincode,
	)
	if err != nil {
		return nil, translateError(err, "updating address")
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes the address owned by userID.
func (r *AddressRepository) Delete(ctx context.Context, id int64, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE address_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return translateError(err, "deleting address")
	}
	return expectAffected(res, "deleting address")
}
