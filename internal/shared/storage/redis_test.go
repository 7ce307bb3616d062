package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKVGetMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectGet("eventx:tickets").RedisNil()

	_, err := kv.Get(context.Background(), "eventx:tickets")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKVSetGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)
	ctx := context.Background()

	mock.ExpectSet("eventx:profile", `{"name":"User"}`, 0).SetVal("OK")
	mock.ExpectGet("eventx:profile").SetVal(`{"name":"User"}`)

	require.NoError(t, kv.Set(ctx, "eventx:profile", `{"name":"User"}`))
	val, err := kv.Get(ctx, "eventx:profile")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"User"}`, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKVDel(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectDel("eventx:bookings", "eventx:tickets", "eventx:profile").SetVal(3)

	err := kv.Del(context.Background(), "eventx:bookings", "eventx:tickets", "eventx:profile")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKVWrapsBackendErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	backendErr := errors.New("connection refused")
	mock.ExpectGet("eventx:bookings").SetErr(backendErr)

	_, err := kv.Get(context.Background(), "eventx:bookings")
	require.Error(t, err)

	var storageErr *Error
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "get", storageErr.Op)
	assert.ErrorIs(t, err, backendErr)
}
