package memory

import (
	"context"

	"github.com/gocomet/ride-matching/internal/domain/ride"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
)

// RideRepository keeps rides in memory, keyed by ride ID
type RideRepository struct {
	rides *table[*ride.Ride]
}

// NewRideRepository creates an empty ride store
func NewRideRepository() *RideRepository {
	return &RideRepository{
		rides: newTable((*ride.Ride).Clone),
	}
}

var _ ride.Repository = (*RideRepository)(nil)

func (r *RideRepository) Create(_ context.Context, rd *ride.Ride) error {
	if !r.rides.insert(rd.ID, rd) {
		return apperrors.Duplicate("Ride already exists", ride.ErrRideExists)
	}
	return nil
}

func (r *RideRepository) GetByID(_ context.Context, id string) (*ride.Ride, error) {
	rd, ok := r.rides.get(id)
	if !ok {
		return nil, apperrors.NotFound("Ride not found", ride.ErrRideNotFound)
	}
	return rd, nil
}

func (r *RideRepository) Exists(_ context.Context, id string) (bool, error) {
	return r.rides.has(id), nil
}

func (r *RideRepository) List(_ context.Context) ([]*ride.Ride, error) {
	return r.rides.list(nil), nil
}

func (r *RideRepository) Update(_ context.Context, rd *ride.Ride) error {
	if !r.rides.replace(rd.ID, rd) {
		return apperrors.NotFound("Ride not found", ride.ErrRideNotFound)
	}
	return nil
}

func (r *RideRepository) Delete(_ context.Context, id string) error {
	if !r.rides.remove(id) {
		return apperrors.NotFound("Ride not found", ride.ErrRideNotFound)
	}
	return nil
}
