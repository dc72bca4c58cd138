package memory

import (
	"context"

	"github.com/gocomet/ride-matching/internal/domain/rider"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
)

// RiderRepository keeps riders in memory, keyed by rider ID
type RiderRepository struct {
	riders *table[*rider.Rider]
}

// NewRiderRepository creates an empty rider store
func NewRiderRepository() *RiderRepository {
	return &RiderRepository{
		riders: newTable(func(r *rider.Rider) *rider.Rider {
			c := *r
			return &c
		}),
	}
}

var _ rider.Repository = (*RiderRepository)(nil)

func (r *RiderRepository) Create(_ context.Context, rd *rider.Rider) error {
	if !r.riders.insert(rd.ID, rd) {
		return apperrors.Duplicate("Rider already exists", rider.ErrRiderExists)
	}
	return nil
}

func (r *RiderRepository) GetByID(_ context.Context, id string) (*rider.Rider, error) {
	rd, ok := r.riders.get(id)
	if !ok {
		return nil, apperrors.NotFound("Rider not found", rider.ErrRiderNotFound)
	}
	return rd, nil
}

func (r *RiderRepository) List(_ context.Context) ([]*rider.Rider, error) {
	return r.riders.list(nil), nil
}

func (r *RiderRepository) FindByLocation(_ context.Context, x, y float64) ([]*rider.Rider, error) {
	return r.riders.list(func(rd *rider.Rider) bool { return rd.At(x, y) }), nil
}

func (r *RiderRepository) UpdateLocation(_ context.Context, id string, x, y float64) error {
	if !r.riders.mutate(id, func(rd *rider.Rider) { rd.SetLocation(x, y) }) {
		return apperrors.NotFound("Invalid Rider ID", rider.ErrRiderNotFound)
	}
	return nil
}

func (r *RiderRepository) Delete(_ context.Context, id string) error {
	if !r.riders.remove(id) {
		return apperrors.NotFound("Invalid Rider ID", rider.ErrRiderNotFound)
	}
	return nil
}
