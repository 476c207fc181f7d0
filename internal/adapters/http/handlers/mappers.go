package handlers

import (
	"strconv"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
)

// mapRegisterRequest converts a RegisterRequest to a domain User. The role
// and password hash are assigned by the service.
func mapRegisterRequest(req *dto.RegisterRequest) *user.User {
	return &user.User{
		EmailID:     domain.NormalizeEmail(req.EmailID),
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	}
}

// mapAddressRequest converts a validated AddressRequest to a domain Address.
func mapAddressRequest(req *dto.AddressRequest) (*address.Address, error) {
	pincode, err := strconv.Atoi(req.Pincode)
	if err != nil {
		return nil, domain.NewValidationError("pincode", "must be exactly 6 digits")
	}
	return &address.Address{
		StreetName:  req.StreetName,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Landmark:    req.Landmark,
		PhoneNumber: req.PhoneNumber,
		Pincode:     pincode,
	}, nil
}

// mapWatchRequest converts a validated WatchRequest to a domain Watch.
func mapWatchRequest(req *dto.WatchRequest) *watch.Watch {
	w := &watch.Watch{
		Brand:           req.Brand,
		Name:            req.Name,
		Type:            watch.Type(req.Type),
		Description:     req.Description,
		ImagePaths:      append([]string(nil), req.ImagePaths...),
		Price:           req.Price,
		AvailableStatus: watch.AvailableStatus(req.AvailableStatus),
	}
	if req.StockQuantity != nil {
		w.StockQuantity = *req.StockQuantity
	}
	return w
}

func mapWatchFilter(q *dto.WatchFilterQuery) watch.Filter {
	return watch.Filter{
		Brand:  q.Brand,
		Type:   watch.Type(q.Type),
		Status: watch.AvailableStatus(q.Status),
	}
}
