package rider

import (
	"context"
	"errors"

	"github.com/gocomet/ride-matching/internal/domain/user"
)

var (
	ErrRiderNotFound = errors.New("rider not found")
	ErrRiderExists   = errors.New("rider already exists")
)

// Rider represents a rider entity
type Rider struct {
	user.User
}

// New creates a rider at (x, y)
func New(id string, x, y float64) *Rider {
	return &Rider{
		User: user.User{
			ID:       id,
			Location: user.Location{X: x, Y: y},
		},
	}
}

// Repository defines the interface for rider data access
type Repository interface {
	Create(ctx context.Context, rider *Rider) error
	GetByID(ctx context.Context, id string) (*Rider, error)
	List(ctx context.Context) ([]*Rider, error)
	FindByLocation(ctx context.Context, x, y float64) ([]*Rider, error)
	UpdateLocation(ctx context.Context, id string, x, y float64) error
	Delete(ctx context.Context, id string) error
}
