package matching

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	"github.com/gocomet/ride-matching/internal/domain/rider"
	"github.com/gocomet/ride-matching/internal/geo"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
)

const (
	// DefaultMaxRadius is the inclusive search radius around a rider
	DefaultMaxRadius = 5.0
	// DefaultMaxCandidates caps the ranked list kept per rider
	DefaultMaxCandidates = 5
)

// Service handles driver-rider matching and owns the per-rider match cache
type Service struct {
	drivers driver.Repository
	riders  rider.Repository
	logger  *logger.Logger
	config  Config

	mu      sync.RWMutex
	matches map[string][]Candidate
}

// Config holds matching configuration
type Config struct {
	MaxRadius     float64
	MaxCandidates int
}

// DefaultConfig returns the fixed matching rules
func DefaultConfig() Config {
	return Config{
		MaxRadius:     DefaultMaxRadius,
		MaxCandidates: DefaultMaxCandidates,
	}
}

// Candidate is a ranked driver snapshot taken at match time
type Candidate struct {
	DriverID string
	Distance float64
}

// NewService creates a new matching service
func NewService(drivers driver.Repository, riders rider.Repository, logger *logger.Logger, config Config) *Service {
	return &Service{
		drivers: drivers,
		riders:  riders,
		logger:  logger,
		config:  config,
		matches: make(map[string][]Candidate),
	}
}

// FindDriverNearRider ranks the available drivers within range of the rider,
// closest first with ties broken by driver ID, and caches the result for
// the rider. An empty result is cached too.
func (s *Service) FindDriverNearRider(ctx context.Context, riderID string) ([]Candidate, error) {
	r, err := s.riders.GetByID(ctx, riderID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.CodeInvalidRider, "INVALID_RIDER", apperrors.KindNotFound, err)
	}

	drivers, err := s.drivers.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list drivers")
	}

	candidates := make([]Candidate, 0, len(drivers))
	for _, d := range drivers {
		if !d.CanAcceptRides() {
			continue
		}
		dist := geo.Distance(r.Location, d.Location)
		if dist > s.config.MaxRadius {
			continue
		}
		candidates = append(candidates, Candidate{DriverID: d.ID, Distance: dist})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.DriverID, b.DriverID)
	})

	if len(candidates) > s.config.MaxCandidates {
		candidates = candidates[:s.config.MaxCandidates]
	}

	s.mu.Lock()
	s.matches[riderID] = candidates
	s.mu.Unlock()

	if len(candidates) == 0 {
		s.logger.Info("No drivers available near rider",
			logger.String("rider_id", riderID),
			logger.Float64("max_radius", s.config.MaxRadius),
		)
		return []Candidate{}, nil
	}

	s.logger.Info("Drivers matched",
		logger.String("rider_id", riderID),
		logger.Strings("driver_ids", DriverIDs(candidates)),
	)

	return slices.Clone(candidates), nil
}

// MatchedDriver returns the candidate at 1-based rank n of the rider's
// last match
func (s *Service) MatchedDriver(riderID string, n int) (Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, ok := s.matches[riderID]
	if !ok || n < 1 || n > len(matched) {
		return Candidate{}, false
	}
	return matched[n-1], true
}

// Matches returns a copy of the rider's last match, if any
func (s *Service) Matches(riderID string) ([]Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, ok := s.matches[riderID]
	if !ok {
		return nil, false
	}
	return slices.Clone(matched), true
}

// DriverIDs extracts driver IDs in rank order
func DriverIDs(candidates []Candidate) []string {
	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.DriverID)
	}
	return ids
}
