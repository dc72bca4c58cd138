package memory

import (
	"context"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
)

// DriverRepository keeps drivers in memory, keyed by driver ID
type DriverRepository struct {
	drivers *table[*driver.Driver]
}

// NewDriverRepository creates an empty driver store
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: newTable(func(d *driver.Driver) *driver.Driver {
			c := *d
			return &c
		}),
	}
}

var _ driver.Repository = (*DriverRepository)(nil)

func (r *DriverRepository) Create(_ context.Context, d *driver.Driver) error {
	if !r.drivers.insert(d.ID, d) {
		return apperrors.Duplicate("Driver already exists", driver.ErrDriverExists)
	}
	return nil
}

func (r *DriverRepository) GetByID(_ context.Context, id string) (*driver.Driver, error) {
	d, ok := r.drivers.get(id)
	if !ok {
		return nil, apperrors.NotFound("Driver not found", driver.ErrDriverNotFound)
	}
	return d, nil
}

func (r *DriverRepository) List(_ context.Context) ([]*driver.Driver, error) {
	return r.drivers.list(nil), nil
}

func (r *DriverRepository) FindByLocation(_ context.Context, x, y float64) ([]*driver.Driver, error) {
	return r.drivers.list(func(d *driver.Driver) bool { return d.At(x, y) }), nil
}

func (r *DriverRepository) UpdateLocation(_ context.Context, id string, x, y float64) error {
	if !r.drivers.mutate(id, func(d *driver.Driver) { d.SetLocation(x, y) }) {
		return apperrors.NotFound("Invalid Driver ID", driver.ErrDriverNotFound)
	}
	return nil
}

func (r *DriverRepository) SetAvailability(_ context.Context, id string, available bool) error {
	if !r.drivers.mutate(id, func(d *driver.Driver) { d.SetAvailability(available) }) {
		return apperrors.NotFound("Invalid Driver ID", driver.ErrDriverNotFound)
	}
	return nil
}

func (r *DriverRepository) Delete(_ context.Context, id string) error {
	if !r.drivers.remove(id) {
		return apperrors.NotFound("Invalid Driver ID", driver.ErrDriverNotFound)
	}
	return nil
}
