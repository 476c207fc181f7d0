// Package watch holds the catalog entity sold by the store.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
)

// Watch is a catalog item. ImagePaths are stored as child rows.
type Watch struct {
	ID              int64
	Brand           string
	Name            string
	Type            Type
	Description     string
	ImagePaths      []string
	StockQuantity   int
	Price           decimal.Decimal
	AvailableStatus AvailableStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks business rules for the Watch entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (w *Watch) Validate() error {
	if w == nil {
		return domain.NewValidationError("watch", domain.MsgRequired)
	}

	fields := make(map[string]string)

	if strings.TrimSpace(w.Brand) == "" {
		fields["brand"] = domain.MsgRequired
	}
	if strings.TrimSpace(w.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !w.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", w.Type)
	}
	if len(w.ImagePaths) == 0 {
		fields["image_paths"] = "must contain at least one image"
	}
	for i, p := range w.ImagePaths {
		if strings.TrimSpace(p) == "" {
			fields[fmt.Sprintf("image_paths[%d]", i)] = domain.MsgBlank
		}
	}
	if w.StockQuantity < 0 {
		fields["stock_quantity"] = fmt.Sprintf("must not be negative, got %d", w.StockQuantity)
	}
	if !w.Price.IsPositive() {
		fields["price"] = "must be greater than zero"
	}
	if !w.AvailableStatus.IsValid() {
		fields["available_status"] = fmt.Sprintf("invalid: %q", w.AvailableStatus)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
