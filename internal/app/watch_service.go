package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// Compile-time check that WatchService implements ports.WatchService.
var _ ports.WatchService = (*WatchService)(nil)

// WatchService implements ports.WatchService over the watch repository.
type WatchService struct {
	watches ports.WatchRepository
	logger  *slog.Logger
}

// NewWatchService creates a WatchService.
func NewWatchService(watches ports.WatchRepository, logger *slog.Logger) *WatchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WatchService{
		watches: watches,
		logger:  logger,
	}
}

// ListWatches returns watches matching filter.
func (s *WatchService) ListWatches(ctx context.Context, filter watch.Filter) ([]watch.Watch, error) {
	s.logger.InfoContext(ctx, "listing watches",
		slog.String("brand", filter.Brand),
		slog.String("type", filter.Type.String()),
		slog.String("status", filter.Status.String()),
	)

	list, err := s.watches.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list watches",
			slog.String("operation", "ListWatches"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return list, nil
}

// GetWatch returns a single watch by ID.
func (s *WatchService) GetWatch(ctx context.Context, id int64) (*watch.Watch, error) {
	s.logger.InfoContext(ctx, "fetching watch", slog.Int64("id", id))

	w, err := s.watches.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch watch",
			slog.String("operation", "GetWatch"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return w, nil
}

// CreateWatch validates and stores a new watch.
func (s *WatchService) CreateWatch(ctx context.Context, w *watch.Watch) (*watch.Watch, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating watch",
		slog.String("brand", w.Brand),
		slog.String("name", w.Name),
	)

	created, err := s.watches.Create(ctx, w)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create watch",
			slog.String("operation", "CreateWatch"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateWatch validates and replaces an existing watch.
func (s *WatchService) UpdateWatch(ctx context.Context, id int64, w *watch.Watch) (*watch.Watch, error) {
	s.logger.InfoContext(ctx, "updating watch", slog.Int64("id", id))

	if err := w.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.watches.Update(ctx, id, w)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update watch",
			slog.String("operation", "UpdateWatch"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteWatch removes a watch.
func (s *WatchService) DeleteWatch(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting watch", slog.Int64("id", id))

	if err := s.watches.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete watch",
			slog.String("operation", "DeleteWatch"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
