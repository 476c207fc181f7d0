package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// Compile-time check that AddressService implements ports.AddressService.
var _ ports.AddressService = (*AddressService)(nil)

// AddressService implements ports.AddressService. Every operation is scoped
// to the owner passed in by the caller.
type AddressService struct {
	addresses ports.AddressRepository
	logger    *slog.Logger
}

// NewAddressService creates an AddressService.
func NewAddressService(addresses ports.AddressRepository, logger *slog.Logger) *AddressService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AddressService{
		addresses: addresses,
		logger:    logger,
	}
}

// Save validates a and stores it under owner.
func (s *AddressService) Save(ctx context.Context, owner string, a *address.Address) (*address.Address, error) {
	s.logger.InfoContext(ctx, "saving address", slog.String("user_id", owner))

	if err := a.Validate(); err != nil {
		return nil, err
	}
	a.UserID = owner

	created, err := s.addresses.Create(ctx, a)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to save address",
			slog.String("operation", "Save"),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// List returns the owner's addresses, or domain.ErrNotFound when there are none.
func (s *AddressService) List(ctx context.Context, owner string) ([]address.Address, error) {
	s.logger.InfoContext(ctx, "listing addresses", slog.String("user_id", owner))

	list, err := s.addresses.ListByUser(ctx, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list addresses",
			slog.String("operation", "List"),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no addresses for user %s: %w", owner, domain.ErrNotFound)
	}

	return list, nil
}

// FindByIDAndUserID returns the address if owner has it.
func (s *AddressService) FindByIDAndUserID(ctx context.Context, id int64, owner string) (*address.Address, error) {
	s.logger.InfoContext(ctx, "fetching address",
		slog.Int64("id", id),
		slog.String("user_id", owner),
	)

	a, err := s.addresses.FindByIDAndUserID(ctx, id, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch address",
			slog.String("operation", "FindByIDAndUserID"),
			slog.Int64("id", id),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	return a, nil
}

// Update validates a and overwrites the stored address id.
func (s *AddressService) Update(ctx context.Context, owner string, id int64, a *address.Address) (*address.Address, error) {
	s.logger.InfoContext(ctx, "updating address",
		slog.Int64("id", id),
		slog.String("user_id", owner),
	)

	if err := a.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.FindByIDAndUserID(ctx, id, owner); err != nil {
		return nil, fmt.Errorf("verifying address: %w", err)
	}

	a.ID = id
	a.UserID = owner

	updated, err := s.addresses.Update(ctx, a)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update address",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating address: %w", err)
	}

	return updated, nil
}

// Delete removes the owner's address id.
func (s *AddressService) Delete(ctx context.Context, owner string, id int64) error {
	s.logger.InfoContext(ctx, "deleting address",
		slog.Int64("id", id),
		slog.String("user_id", owner),
	)

	if _, err := s.FindByIDAndUserID(ctx, id, owner); err != nil {
		return fmt.Errorf("verifying address: %w", err)
	}

	if err := s.addresses.Delete(ctx, id, owner); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete address",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.String("user_id", owner),
			slog.Any("error", err),
		)
		return fmt.Errorf("deleting address: %w", err)
	}

	return nil
}
