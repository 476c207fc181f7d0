package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/database"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// WatchRepository persists catalog watches. Image paths live in the
// watch_images child table and are written in the same transaction as the
// parent row.
type WatchRepository struct {
	db *sqlx.DB
}

var _ ports.WatchRepository = (*WatchRepository)(nil)

// NewWatchRepository creates a new watch repository.
func NewWatchRepository(db *sqlx.DB) *WatchRepository {
	return &WatchRepository{db: db}
}

type watchRow struct {
	ID              int64           `db:"watch_id"`
	Brand           string          `db:"brand"`
	Name            string          `db:"name"`
	Type            string          `db:"type"`
	Description     string          `db:"description"`
	StockQuantity   int             `db:"stock_quantity"`
	Price           decimal.Decimal `db:"price"`
	AvailableStatus string          `db:"available_status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r watchRow) toDomain() watch.Watch {
	return watch.Watch{
		ID:              r.ID,
		Brand:           r.Brand,
		Name:            r.Name,
		Type:            watch.Type(r.Type),
		Description:     r.Description,
		StockQuantity:   r.StockQuantity,
		Price:           r.Price,
		AvailableStatus: watch.AvailableStatus(r.AvailableStatus),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type imageRow struct {
	WatchID   int64  `db:"watch_id"`
	ImagePath string `db:"image_path"`
}

const watchColumns = `watch_id, brand, name, type, description, stock_quantity, price, available_status, created_at, updated_at`

// List returns watches matching filter ordered by id. Brand matching is
// case-insensitive.
func (r *WatchRepository) List(ctx context.Context, filter watch.Filter) ([]watch.Watch, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Brand != "" {
		args = append(args, filter.Brand)
		conds = append(conds, fmt.Sprintf("LOWER(brand) = LOWER($%d)", len(args)))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("available_status = $%d", len(args)))
	}

	query := `SELECT ` + watchColumns + ` FROM watches`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY watch_id`

	var rows []watchRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateError(err, "listing watches")
	}
	if len(rows) == 0 {
		return []watch.Watch{}, nil
	}

	watches := make([]watch.Watch, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		watches = append(watches, row.toDomain())
		ids = append(ids, row.ID)
	}

	images, err := r.imagesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range watches {
		watches[i].ImagePaths = images[watches[i].ID]
	}
	return watches, nil
}

// imagesFor loads image paths for the given watches, keyed by watch id and
// kept in insertion order.
func (r *WatchRepository) imagesFor(ctx context.Context, ids []int64) (map[int64][]string, error) {
	query, args, err := sqlx.In(`SELECT watch_id, image_path FROM watch_images WHERE watch_id IN (?) ORDER BY image_id`, ids)
	if err != nil {
		return nil, fmt.Errorf("building image query: %w", err)
	}

	var rows []imageRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, translateError(err, "loading watch images")
	}

	images := make(map[int64][]string, len(ids))
	for _, row := range rows {
		images[row.WatchID] = append(images[row.WatchID], row.ImagePath)
	}
	return images, nil
}

// FindByID returns the watch with its images.
func (r *WatchRepository) FindByID(ctx context.Context, id int64) (*watch.Watch, error) {
	var row watchRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+watchColumns+` FROM watches WHERE watch_id = $1`, id); err != nil {
		return nil, translateError(err, "finding watch")
	}

	images, err := r.imagesFor(ctx, []int64{id})
	if err != nil {
		return nil, err
	}

	found := row.toDomain()
	found.ImagePaths = images[id]
	return &found, nil
}

// Create inserts w and its image rows in a single transaction.
func (r *WatchRepository) Create(ctx context.Context, w *watch.Watch) (*watch.Watch, error) {
	query := `
		INSERT INTO watches (brand, name, type, description, stock_quantity, price, available_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + watchColumns

	var saved watch.Watch
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row watchRow
		err := tx.GetContext(ctx, &row, query,
			w.Brand,
			w.Name,
			string(w.Type),
			w.Description,
			w.StockQuantity,
			w.Price,
			string(w.AvailableStatus),
		)
		if err != nil {
			return translateError(err, "creating watch")
		}

		saved = row.toDomain()
		if err := insertImages(ctx, tx, saved.ID, w.ImagePaths); err != nil {
			return err
		}
		saved.ImagePaths = append([]string(nil), w.ImagePaths...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the watch row and replaces all of its images.
func (r *WatchRepository) Update(ctx context.Context, id int64, w *watch.Watch) (*watch.Watch, error) {
	query := `
		UPDATE watches
		SET brand = $2, name = $3, type = $4, description = $5, stock_quantity = $6,
		    price = $7, available_status = $8, updated_at = NOW()
		WHERE watch_id = $1
		RETURNING ` + watchColumns

	var updated watch.Watch
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var row watchRow
		err := tx.GetContext(ctx, &row, query,
			id,
			w.Brand,
			w.Name,
			string(w.Type),
			w.Description,
			w.StockQuantity,
			w.Price,
			string(w.AvailableStatus),
		)
		if err != nil {
			return translateError(err, "updating watch")
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM watch_images WHERE watch_id = $1`, id); err != nil {
			return translateError(err, "clearing watch images")
		}
		if err := insertImages(ctx, tx, id, w.ImagePaths); err != nil {
			return err
		}

		updated = row.toDomain()
		updated.ImagePaths = append([]string(nil), w.ImagePaths...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the watch. Images go with it via ON DELETE CASCADE.
func (r *WatchRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watches WHERE watch_id = $1`, id)
	if err != nil {
		return translateError(err, "deleting watch")
	}
	return expectAffected(res, "deleting watch")
}

func insertImages(ctx context.Context, tx *sqlx.Tx, watchID int64, paths []string) error {
	for _, p := range paths {
		if _, err := tx.ExecContext(ctx, `INSERT INTO watch_images (watch_id, image_path) VALUES ($1, $2)`, watchID, p); err != nil {
			return translateError(err, "inserting watch image")
		}
	}
	return nil
}
