package registry

import (
	"context"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
	"github.com/gocomet/ride-matching/pkg/validation"
)

// DriverService handles driver registration and upkeep
type DriverService struct {
	repo   driver.Repository
	logger *logger.Logger
}

// NewDriverService creates a new driver service
func NewDriverService(repo driver.Repository, logger *logger.Logger) *DriverService {
	return &DriverService{
		repo:   repo,
		logger: logger,
	}
}

// AddDriver registers an available driver at (x, y)
func (s *DriverService) AddDriver(ctx context.Context, id string, x, y float64) error {
	if err := validation.ID(id); err != nil {
		return err
	}
	if err := validation.Coordinates(x, y); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, driver.New(id, x, y)); err != nil {
		return err
	}

	s.logger.Debug("Driver registered",
		logger.String("driver_id", id),
		logger.Float64("x", x),
		logger.Float64("y", y),
	)
	return nil
}

// GetDriver retrieves a driver by ID
func (s *DriverService) GetDriver(ctx context.Context, id string) (*driver.Driver, error) {
	if err := validation.ID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// ListDrivers returns every registered driver
func (s *DriverService) ListDrivers(ctx context.Context) ([]*driver.Driver, error) {
	return s.repo.List(ctx)
}

// DriversAt returns the drivers standing exactly at (x, y)
func (s *DriverService) DriversAt(ctx context.Context, x, y float64) ([]*driver.Driver, error) {
	return s.repo.FindByLocation(ctx, x, y)
}

// UpdateDriverLocation moves a driver
func (s *DriverService) UpdateDriverLocation(ctx context.Context, id string, x, y float64) error {
	if err := validation.ID(id); err != nil {
		return err
	}
	if err := validation.Coordinates(x, y); err != nil {
		return err
	}
	return s.repo.UpdateLocation(ctx, id, x, y)
}

// RemoveDriver deletes a driver that is not serving a ride
func (s *DriverService) RemoveDriver(ctx context.Context, id string) error {
	d, err := s.GetDriver(ctx, id)
	if err != nil {
		return err
	}
	if !d.CanAcceptRides() {
		return apperrors.NewAppError("DRIVER_ON_RIDE", "Driver is on an active ride", apperrors.KindValidation, driver.ErrDriverOnRide)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Debug("Driver removed", logger.String("driver_id", id))
	return nil
}
