package registry

import (
	"context"

	"github.com/gocomet/ride-matching/internal/domain/rider"
	"github.com/gocomet/ride-matching/pkg/logger"
	"github.com/gocomet/ride-matching/pkg/validation"
)

// RiderService handles rider registration and upkeep
type RiderService struct {
	repo   rider.Repository
	logger *logger.Logger
}

// NewRiderService creates a new rider service
func NewRiderService(repo rider.Repository, logger *logger.Logger) *RiderService {
	return &RiderService{
		repo:   repo,
		logger: logger,
	}
}

// AddRider registers a rider at (x, y)
func (s *RiderService) AddRider(ctx context.Context, id string, x, y float64) error {
	if err := validation.ID(id); err != nil {
		return err
	}
	if err := validation.Coordinates(x, y); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, rider.New(id, x, y)); err != nil {
		return err
	}

	s.logger.Debug("Rider registered",
		logger.String("rider_id", id),
		logger.Float64("x", x),
		logger.Float64("y", y),
	)
	return nil
}

// GetRider retrieves a rider by ID
func (s *RiderService) GetRider(ctx context.Context, id string) (*rider.Rider, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ListRiders returns every registered rider
func (s *RiderService) ListRiders(ctx context.Context) ([]*rider.Rider, error) {
	return s.repo.List(ctx)
}

// RidersAt returns the riders standing exactly at (x, y)
func (s *RiderService) RidersAt(ctx context.Context, x, y float64) ([]*rider.Rider, error) {
	return s.repo.FindByLocation(ctx, x, y)
}

// UpdateRiderLocation moves a rider
func (s *RiderService) UpdateRiderLocation(ctx context.Context, id string, x, y float64) error {
	if err := validation.ID(id); err != nil {
		return err
	}
	if err := validation.Coordinates(x, y); err != nil {
		return err
	}
	return s.repo.UpdateLocation(ctx, id, x, y)
}

// RemoveRider deletes a rider
func (s *RiderService) RemoveRider(ctx context.Context, id string) error {
	if err := validation.ID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
