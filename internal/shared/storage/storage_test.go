package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVGetMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.Get(context.Background(), "eventx:bookings")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryKVSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Set(ctx, "k", `["a","b"]`))
	val, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, val)
}

func TestMemoryKVDel(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))
	require.NoError(t, kv.Del(ctx, "a", "b", "never-written"))

	_, err := kv.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = kv.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJSONMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	var dest []string
	err := GetJSON(context.Background(), kv, "missing", &dest)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetGetJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	type rec struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, kv, "recs", []rec{{ID: "r1", Count: 2}}))

	var got []rec
	require.NoError(t, GetJSON(ctx, kv, "recs", &got))
	assert.Equal(t, []rec{{ID: "r1", Count: 2}}, got)
}

func TestGetJSONCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, "recs", "{not json"))

	var dest []string
	err := GetJSON(ctx, kv, "recs", &dest)
	require.Error(t, err)

	var storageErr *Error
	assert.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "unmarshal", storageErr.Op)
}
