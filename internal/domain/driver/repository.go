package driver

import (
	"context"
)

// Repository defines the interface for driver data access.
// Implementations hand out copies; callers change state through the
// repository only.
type Repository interface {
	// Create stores a new driver
	Create(ctx context.Context, driver *Driver) error

	// GetByID retrieves a driver by ID
	GetByID(ctx context.Context, id string) (*Driver, error)

	// List returns all drivers in registration order
	List(ctx context.Context) ([]*Driver, error)

	// FindByLocation returns the drivers standing exactly at (x, y)
	FindByLocation(ctx context.Context, x, y float64) ([]*Driver, error)

	// UpdateLocation updates driver location
	UpdateLocation(ctx context.Context, id string, x, y float64) error

	// SetAvailability flips the driver's availability
	SetAvailability(ctx context.Context, id string, available bool) error

	// Delete deletes a driver
	Delete(ctx context.Context, id string) error
}
