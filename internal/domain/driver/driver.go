package driver

import (
	"github.com/gocomet/ride-matching/internal/domain/user"
)

// Driver represents a driver entity
type Driver struct {
	user.User
	Available bool `json:"available"`
}

// New creates a driver at (x, y); new drivers are available
func New(id string, x, y float64) *Driver {
	return &Driver{
		User: user.User{
			ID:       id,
			Location: user.Location{X: x, Y: y},
		},
		Available: true,
	}
}

// CanAcceptRides returns true if driver can accept new rides
func (d *Driver) CanAcceptRides() bool {
	return d.Available
}

// SetAvailability updates the driver's availability
func (d *Driver) SetAvailability(available bool) {
	d.Available = available
}
