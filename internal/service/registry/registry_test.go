package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocomet/ride-matching/internal/domain/driver"
	"github.com/gocomet/ride-matching/internal/domain/rider"
	"github.com/gocomet/ride-matching/internal/domain/user"
	"github.com/gocomet/ride-matching/internal/repository/memory"
	apperrors "github.com/gocomet/ride-matching/pkg/errors"
	"github.com/gocomet/ride-matching/pkg/logger"
)

func TestAddDriver_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewDriverService(memory.NewDriverRepository(), logger.NewNop())

	tests := []struct {
		name string
		id   string
		x, y float64
		kind apperrors.Kind
	}{
		{name: "empty id", id: "", x: 1, y: 1, kind: apperrors.KindValidation},
		{name: "negative x", id: "d1", x: -1, y: 1, kind: apperrors.KindValidation},
		{name: "negative y", id: "d1", x: 1, y: -1, kind: apperrors.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddDriver(ctx, tt.id, tt.x, tt.y)
			assert.True(t, apperrors.IsKind(err, tt.kind), "got %v", err)
		})
	}

	all, err := svc.ListDrivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "invalid input must not register anything")
}

func TestAddDriver_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewDriverService(memory.NewDriverRepository(), logger.NewNop())

	require.NoError(t, svc.AddDriver(ctx, "d1", 0, 0))
	err := svc.AddDriver(ctx, "d1", 1, 1)

	assert.ErrorIs(t, err, driver.ErrDriverExists)
}

func TestDriverLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDriverRepository()
	svc := NewDriverService(repo, logger.NewNop())

	require.NoError(t, svc.AddDriver(ctx, "d1", 0, 0))
	require.NoError(t, svc.AddDriver(ctx, "d2", 2, 2))

	require.NoError(t, svc.UpdateDriverLocation(ctx, "d1", 2, 2))
	at, err := svc.DriversAt(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, at, 2)

	assert.Error(t, svc.UpdateDriverLocation(ctx, "d1", -2, 2))
	assert.ErrorIs(t, svc.UpdateDriverLocation(ctx, "ghost", 2, 2), driver.ErrDriverNotFound)

	d, err := svc.GetDriver(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, user.Location{X: 2, Y: 2}, d.Location)

	require.NoError(t, svc.RemoveDriver(ctx, "d1"))
	_, err = svc.GetDriver(ctx, "d1")
	assert.ErrorIs(t, err, driver.ErrDriverNotFound)
}

func TestRemoveDriver_RefusesBusyDriver(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDriverRepository()
	svc := NewDriverService(repo, logger.NewNop())

	require.NoError(t, svc.AddDriver(ctx, "d1", 0, 0))
	require.NoError(t, repo.SetAvailability(ctx, "d1", false))

	err := svc.RemoveDriver(ctx, "d1")
	assert.ErrorIs(t, err, driver.ErrDriverOnRide)

	_, err = svc.GetDriver(ctx, "d1")
	assert.NoError(t, err)
}

func TestRiderService(t *testing.T) {
	ctx := context.Background()
	svc := NewRiderService(memory.NewRiderRepository(), logger.NewNop())

	require.NoError(t, svc.AddRider(ctx, "r1", 3, 4))
	assert.ErrorIs(t, svc.AddRider(ctx, "r1", 3, 4), rider.ErrRiderExists)
	assert.True(t, apperrors.IsKind(svc.AddRider(ctx, " ", 3, 4), apperrors.KindValidation))

	r, err := svc.GetRider(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, user.Location{X: 3, Y: 4}, r.Location)

	require.NoError(t, svc.UpdateRiderLocation(ctx, "r1", 1, 1))
	at, err := svc.RidersAt(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, at, 1)

	all, err := svc.ListRiders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.RemoveRider(ctx, "r1"))
	assert.ErrorIs(t, svc.RemoveRider(ctx, "r1"), rider.ErrRiderNotFound)
}
