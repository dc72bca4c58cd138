package ridesharing

import (
	"context"
	"errors"
	"sync"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	"github.com/gocomet/ride-matching/internal/domain/ride"
	"github.com/gocomet/ride-matching/internal/domain/rider"
	"github.com/gocomet/ride-matching/internal/domain/user"
	"github.com/gocomet/ride-matching/internal/geo"
	"github.com/gocomet/ride-matching/internal/service/matching"
	"github.com/gocomet/ride-matching/internal/service/pricing"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
	"github.com/gocomet/ride-matching/pkg/validation"
)

// Routine outcomes reported back to the command stream
var (
	ErrInvalidRide      = apperrors.Routine(apperrors.CodeInvalidRide, "INVALID_RIDE", nil)
	ErrRideNotCompleted = apperrors.Routine(apperrors.CodeRideNotCompleted, "RIDE_NOT_COMPLETED", nil)
)

// Service starts, ends and bills rides.
// Each operation holds mu for its whole duration, so commands observe one
// another in call order.
type Service struct {
	riders  rider.Repository
	drivers driver.Repository
	rides   ride.Repository
	matcher *matching.Service
	logger  *logger.Logger

	mu sync.Mutex
}

// Bill is the billing summary of a completed ride
type Bill struct {
	RideID   string
	DriverID string
	Amount   float64
}

// String renders the BILL result line
func (b Bill) String() string {
	return pricing.FormatBill(b.RideID, b.DriverID, b.Amount)
}

// NewService creates a new ride sharing service
func NewService(riders rider.Repository, drivers driver.Repository, rides ride.Repository, matcher *matching.Service, logger *logger.Logger) *Service {
	return &Service{
		riders:  riders,
		drivers: drivers,
		rides:   rides,
		matcher: matcher,
		logger:  logger,
	}
}

// StartRide assigns the rider's n-th matched driver (1-based) to a new
// active ride. Every unmet precondition yields ErrInvalidRide.
func (s *Service) StartRide(ctx context.Context, rideID string, n int, riderID string) (*ride.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With(logger.String("ride_id", rideID), logger.String("rider_id", riderID))

	r, err := s.riders.GetByID(ctx, riderID)
	if err != nil {
		log.Debug("Ride rejected: unknown rider", logger.Err(err))
		return nil, ErrInvalidRide
	}

	candidate, ok := s.matcher.MatchedDriver(riderID, n)
	if !ok {
		log.Debug("Ride rejected: no match at rank", logger.Int("rank", n))
		return nil, ErrInvalidRide
	}

	d, err := s.drivers.GetByID(ctx, candidate.DriverID)
	if err != nil || !d.CanAcceptRides() {
		log.Debug("Ride rejected: driver not available", logger.String("driver_id", candidate.DriverID))
		return nil, ErrInvalidRide
	}

	exists, err := s.rides.Exists(ctx, rideID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to look up ride")
	}
	if exists || validation.ID(rideID) != nil {
		log.Debug("Ride rejected: ride ID unusable")
		return nil, ErrInvalidRide
	}

	if err := s.drivers.SetAvailability(ctx, d.ID, false); err != nil {
		return nil, apperrors.Wrap(err, "failed to reserve driver")
	}

	started := ride.New(rideID, riderID, d.ID, r.Location)
	if err := s.rides.Create(ctx, started); err != nil {
		if rbErr := s.drivers.SetAvailability(ctx, d.ID, true); rbErr != nil {
			log.Error("Failed to release driver after ride create failure", logger.Err(rbErr))
		}
		return nil, apperrors.Wrap(err, "failed to store ride")
	}

	log.Info("Ride started",
		logger.String("driver_id", d.ID),
		logger.Float64("start_x", r.Location.X),
		logger.Float64("start_y", r.Location.Y),
	)

	return started.Clone(), nil
}

// EndRide completes an active ride at (endX, endY), prices it and frees
// the driver. Unknown or already completed rides yield ErrInvalidRide.
func (s *Service) EndRide(ctx context.Context, rideID string, endX, endY, timeTaken float64) (*ride.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.With(logger.String("ride_id", rideID))

	rd, err := s.rides.GetByID(ctx, rideID)
	if err != nil || !rd.CanComplete() {
		log.Debug("Stop rejected: ride missing or not active")
		return nil, ErrInvalidRide
	}

	if err := validation.Coordinates(endX, endY); err != nil {
		return nil, err
	}
	if err := validation.Duration(timeTaken); err != nil {
		return nil, err
	}

	end := user.Location{X: endX, Y: endY}
	distance := geo.Distance(rd.Start, end)
	fare := pricing.CalculateFare(distance, timeTaken)

	if err := rd.Complete(end, timeTaken, distance, fare.Total); err != nil {
		return nil, ErrInvalidRide
	}
	if err := s.rides.Update(ctx, rd); err != nil {
		return nil, apperrors.Wrap(err, "failed to store ride")
	}

	if err := s.drivers.SetAvailability(ctx, rd.DriverID, true); err != nil {
		if !errors.Is(err, driver.ErrDriverNotFound) {
			return nil, apperrors.Wrap(err, "failed to release driver")
		}
		log.Warn("Driver of completed ride no longer registered", logger.String("driver_id", rd.DriverID))
	}

	log.Info("Ride stopped",
		logger.String("driver_id", rd.DriverID),
		logger.Float64("distance", distance),
		logger.Float64("time_taken", timeTaken),
		logger.Float64("bill", fare.Total),
	)

	return rd.Clone(), nil
}

// Bill returns the bill of a completed ride
func (s *Service) Bill(ctx context.Context, rideID string) (*Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rd, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, ErrInvalidRide
	}
	if !rd.IsCompleted() || rd.Bill == nil {
		return nil, ErrRideNotCompleted
	}

	return &Bill{
		RideID:   rd.ID,
		DriverID: rd.DriverID,
		Amount:   *rd.Bill,
	}, nil
}

// ActiveRides returns rides that have started but not ended
func (s *Service) ActiveRides(ctx context.Context) ([]*ride.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.rides.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*ride.Ride, 0, len(all))
	for _, rd := range all {
		if rd.Status == ride.StatusActive {
			active = append(active, rd)
		}
	}
	return active, nil
}
