package matching

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	"github.com/gocomet/ride-matching/internal/domain/rider"
	"github.com/gocomet/ride-matching/internal/repository/memory"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
)

type fixture struct {
	drivers *memory.DriverRepository
	riders  *memory.RiderRepository
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	drivers := memory.NewDriverRepository()
	riders := memory.NewRiderRepository()
	return &fixture{
		drivers: drivers,
		riders:  riders,
		svc:     NewService(drivers, riders, logger.NewNop(), DefaultConfig()),
	}
}

func (f *fixture) addDriver(t *testing.T, id string, x, y float64) {
	t.Helper()
	require.NoError(t, f.drivers.Create(context.Background(), driver.New(id, x, y)))
}

func (f *fixture) addRider(t *testing.T, id string, x, y float64) {
	t.Helper()
	require.NoError(t, f.riders.Create(context.Background(), rider.New(id, x, y)))
}

func TestFindDriverNearRider_InclusiveRadius(t *testing.T) {
	f := newFixture(t)
	f.addDriver(t, "d1", 0, 0)
	f.addRider(t, "r1", 3, 4)

	got, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, []Candidate{{DriverID: "d1", Distance: 5}}, got)
}

func TestFindDriverNearRider_FiltersAndRanks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRider(t, "r1", 0, 0)
	f.addDriver(t, "far", 10, 10)
	f.addDriver(t, "d3", 1, 1)
	f.addDriver(t, "d2", 0, 1)
	f.addDriver(t, "d1", 1, 0)
	f.addDriver(t, "busy", 0, 0)
	f.addDriver(t, "edge", 3.54, 3.54) // 5.006 -> 5.01
	require.NoError(t, f.drivers.SetAvailability(ctx, "busy", false))

	got, err := f.svc.FindDriverNearRider(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2", "d3"}, DriverIDs(got), "distance asc, then id asc")
	assert.Equal(t, 1.41, got[2].Distance)
}

func TestFindDriverNearRider_TruncatesToFive(t *testing.T) {
	f := newFixture(t)
	f.addRider(t, "r1", 0, 0)
	for i := 7; i >= 1; i-- {
		f.addDriver(t, fmt.Sprintf("d%d", i), 0, float64(i)/2)
	}

	got, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5"}, DriverIDs(got))
}

func TestFindDriverNearRider_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.addRider(t, "r1", 2, 2)
	f.addDriver(t, "b", 2, 3)
	f.addDriver(t, "a", 3, 2)
	f.addDriver(t, "c", 0, 0)

	first, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)
	second, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "c"}, DriverIDs(first))
}

func TestFindDriverNearRider_NoDriversCachesEmptyList(t *testing.T) {
	f := newFixture(t)
	f.addRider(t, "r1", 0, 0)
	f.addDriver(t, "d1", 50, 50)

	got, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)
	assert.Empty(t, got)

	cached, ok := f.svc.Matches("r1")
	assert.True(t, ok)
	assert.Empty(t, cached)

	_, ok = f.svc.MatchedDriver("r1", 1)
	assert.False(t, ok)
}

func TestFindDriverNearRider_InvalidRider(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.FindDriverNearRider(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, rider.ErrRiderNotFound)
	assert.Equal(t, apperrors.CodeInvalidRider, apperrors.GetAppError(err).Code)
}

func TestFindDriverNearRider_RematchOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRider(t, "r1", 0, 0)
	f.addDriver(t, "d1", 1, 0)
	f.addDriver(t, "d2", 2, 0)

	_, err := f.svc.FindDriverNearRider(ctx, "r1")
	require.NoError(t, err)

	require.NoError(t, f.drivers.UpdateLocation(ctx, "d1", 40, 40))
	_, err = f.svc.FindDriverNearRider(ctx, "r1")
	require.NoError(t, err)

	c, ok := f.svc.MatchedDriver("r1", 1)
	require.True(t, ok)
	assert.Equal(t, "d2", c.DriverID)
	_, ok = f.svc.MatchedDriver("r1", 2)
	assert.False(t, ok)
}

func TestMatchedDriver_Bounds(t *testing.T) {
	f := newFixture(t)
	f.addRider(t, "r1", 0, 0)
	f.addDriver(t, "d1", 1, 0)
	f.addDriver(t, "d2", 2, 0)

	_, ok := f.svc.MatchedDriver("r1", 1)
	assert.False(t, ok, "no match before MATCH")

	_, err := f.svc.FindDriverNearRider(context.Background(), "r1")
	require.NoError(t, err)

	for _, n := range []int{-1, 0, 3} {
		_, ok := f.svc.MatchedDriver("r1", n)
		assert.False(t, ok, "rank %d", n)
	}

	c, ok := f.svc.MatchedDriver("r1", 2)
	require.True(t, ok)
	assert.Equal(t, Candidate{DriverID: "d2", Distance: 2}, c)
}

func TestMatches_SnapshotIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addRider(t, "r1", 0, 0)
	f.addDriver(t, "d1", 1, 0)

	_, err := f.svc.FindDriverNearRider(ctx, "r1")
	require.NoError(t, err)
	require.NoError(t, f.drivers.UpdateLocation(ctx, "d1", 4, 0))

	cached, ok := f.svc.Matches("r1")
	require.True(t, ok)
	assert.Equal(t, 1.0, cached[0].Distance)

	cached[0].DriverID = "mutated"
	again, _ := f.svc.Matches("r1")
	assert.Equal(t, "d1", again[0].DriverID)
}
