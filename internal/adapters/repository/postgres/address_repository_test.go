package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
)

var addressCols = []string{
	"address_id", "user_id", "street_name", "city", "state", "country",
	"landmark", "phone_number", "pincode", "created_at", "updated_at",
}

const testOwner = "jane@example.com"

var addrTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testAddress() *address.Address {
	return &address.Address{
		UserID:      testOwner,
		StreetName:  "12 MG Road",
		City:        "Bengaluru",
		State:       "Karnataka",
		Country:     "India",
		Landmark:    "Near Metro",
		PhoneNumber: "9876543210",
		Pincode:     560001,
	}
}

func addressRowValues(id int64) []driver.Value {
	a := testAddress()
	return []driver.Value{id, a.UserID, a.StreetName, a.City, a.State, a.Country, a.Landmark, a.PhoneNumber, a.Pincode, addrTime, addrTime}
}

func TestAddressRepository_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	a := testAddress()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO addresses")).
		WithArgs(a.UserID, a.StreetName, a.City, a.State, a.Country, a.Landmark, a.PhoneNumber, a.Pincode).
		WillReturnRows(sqlmock.NewRows(addressCols).AddRow(addressRowValues(7)...))

	saved, err := NewAddressRepository(db).Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, testOwner, saved.UserID)
	assert.Equal(t, 560001, saved.Pincode)
	assert.Equal(t, addrTime, saved.CreatedAt)
}

func TestAddressRepository_ListByUser(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM addresses WHERE user_id = $1 ORDER BY address_id")).
		WithArgs(testOwner).
		WillReturnRows(sqlmock.NewRows(addressCols).
			AddRow(addressRowValues(1)...).
			AddRow(addressRowValues(2)...))

	got, err := NewAddressRepository(db).ListByUser(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestAddressRepository_ListByUser_Empty(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM addresses WHERE user_id = $1")).
		WithArgs(testOwner).
		WillReturnRows(sqlmock.NewRows(addressCols))

	got, err := NewAddressRepository(db).ListByUser(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAddressRepository_FindByIDAndUserID(t *testing.T) {
	t.Parallel()

	t.Run("owned address", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE address_id = $1 AND user_id = $2")).
			WithArgs(int64(3), testOwner).
			WillReturnRows(sqlmock.NewRows(addressCols).AddRow(addressRowValues(3)...))

		got, err := NewAddressRepository(db).FindByIDAndUserID(context.Background(), 3, testOwner)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("other user's address", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE address_id = $1 AND user_id = $2")).
			WithArgs(int64(3), "mallory@example.com").
			WillReturnRows(sqlmock.NewRows(addressCols))

		_, err := NewAddressRepository(db).FindByIDAndUserID(context.Background(), 3, "mallory@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAddressRepository_Update(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	a := testAddress()
	a.ID = 4

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE addresses")).
		WithArgs(a.ID, a.UserID, a.StreetName, a.City, a.State, a.Country, a.Landmark, a.PhoneNumber, a.Pincode).
		WillReturnRows(sqlmock.NewRows(addressCols).AddRow(addressRowValues(4)...))

	got, err := NewAddressRepository(db).Update(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
}

func TestAddressRepository_Update_Missing(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	a := testAddress()
	a.ID = 99

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE addresses")).
		WillReturnRows(sqlmock.NewRows(addressCols))

	_, err := NewAddressRepository(db).Update(context.Background(), a)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddressRepository_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		affected     int64
		execErr      error
		wantErr      bool
		wantNotFound bool
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: true, wantNotFound: true},
		{name: "driver error", execErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := newMockDB(t)
			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM addresses WHERE address_id = $1 AND user_id = $2")).
				WithArgs(int64(5), testOwner)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := NewAddressRepository(db).Delete(context.Background(), 5, testOwner)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrNotFound))
		})
	}
}
