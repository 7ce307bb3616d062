package profile

import (
	"context"
	"testing"

	"eventx/internal/shared/constants"
	"eventx/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	return NewService(NewRepository(kv), kv), kv
}

func TestGetProfileReturnsDefaultsWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultProfile(), p)
	assert.Equal(t, "user@example.com", p.Email)
	assert.True(t, p.NotificationsEnabled)
	assert.False(t, p.DarkMode)
}

func TestUpdateProfileLastWriteWins(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := UserProfile{Name: "Anna", Email: "anna@example.com", NotificationsEnabled: true}
	_, err := svc.UpdateProfile(ctx, first)
	require.NoError(t, err)

	second := first
	second.Name = "Anna K"
	second.DarkMode = true
	_, err = svc.UpdateProfile(ctx, second)
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestNotificationsEnabledFollowsProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Default is enabled.
	assert.True(t, svc.NotificationsEnabled(ctx))

	p := DefaultProfile()
	p.NotificationsEnabled = false
	_, err := svc.UpdateProfile(ctx, p)
	require.NoError(t, err)

	assert.False(t, svc.NotificationsEnabled(ctx))
}

func TestWipeDataClearsUserKeysButKeepsCatalog(t *testing.T) {
	svc, kv := newTestService(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, constants.StorageKeyBookings, "[]"))
	require.NoError(t, kv.Set(ctx, constants.StorageKeyTickets, "[]"))
	require.NoError(t, kv.Set(ctx, constants.StorageKeyProfile, "{}"))
	require.NoError(t, kv.Set(ctx, constants.StorageKeyEvents, "[]"))

	require.NoError(t, svc.WipeData(ctx))

	for _, key := range constants.WipeKeys {
		_, err := kv.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrNotFound, key)
	}

	// The catalog survives a wipe.
	_, err := kv.Get(ctx, constants.StorageKeyEvents)
	assert.NoError(t, err)
}
