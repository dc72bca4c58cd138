package ride

import (
	"context"
	"errors"

	"github.com/gocomet/ride-matching/internal/domain/user"
)

// Status represents ride status
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Ride represents a ride between one rider and one driver.
// End, TimeTaken, Distance and Bill stay nil until the ride is completed.
type Ride struct {
	ID        string         `json:"id"`
	RiderID   string         `json:"rider_id"`
	DriverID  string         `json:"driver_id"`
	Start     user.Location  `json:"start"`
	End       *user.Location `json:"end,omitempty"`
	TimeTaken *float64       `json:"time_taken,omitempty"`
	Distance  *float64       `json:"distance,omitempty"`
	Bill      *float64       `json:"bill,omitempty"`
	Status    Status         `json:"status"`
}

// Repository interface
type Repository interface {
	Create(ctx context.Context, ride *Ride) error
	GetByID(ctx context.Context, id string) (*Ride, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*Ride, error)
	Update(ctx context.Context, ride *Ride) error
	Delete(ctx context.Context, id string) error
}

// Errors
var (
	ErrRideNotFound  = errors.New("ride not found")
	ErrRideExists    = errors.New("ride already exists")
	ErrInvalidStatus = errors.New("invalid status transition")
)

// New starts an active ride from the rider's current location
func New(id, riderID, driverID string, start user.Location) *Ride {
	return &Ride{
		ID:       id,
		RiderID:  riderID,
		DriverID: driverID,
		Start:    start,
		Status:   StatusActive,
	}
}

// CanComplete checks if ride can be completed
func (r *Ride) CanComplete() bool {
	return r.Status == StatusActive
}

// IsCompleted reports whether the ride reached its terminal state
func (r *Ride) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// Complete records the trip outcome and moves the ride to completed
func (r *Ride) Complete(end user.Location, timeTaken, distance, bill float64) error {
	if !r.CanComplete() {
		return ErrInvalidStatus
	}
	r.End = &end
	r.TimeTaken = &timeTaken
	r.Distance = &distance
	r.Bill = &bill
	r.Status = StatusCompleted
	return nil
}

// Clone returns a deep copy of the ride
func (r *Ride) Clone() *Ride {
	c := *r
	if r.End != nil {
		end := *r.End
		c.End = &end
	}
	if r.TimeTaken != nil {
		v := *r.TimeTaken
		c.TimeTaken = &v
	}
	if r.Distance != nil {
		v := *r.Distance
		c.Distance = &v
	}
	if r.Bill != nil {
		v := *r.Bill
		c.Bill = &v
	}
	return &c
}
