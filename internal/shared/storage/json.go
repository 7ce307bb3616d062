package storage

import (
	"context"
	"encoding/json"
)

// GetJSON reads the value at key and unmarshals it into dest. Returns
// ErrNotFound when the key is absent.
func GetJSON(ctx context.Context, kv KV, key string, dest interface{}) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return &Error{Op: "unmarshal", Key: key, Err: err}
	}
	return nil
}

// SetJSON marshals value and writes it at key.
func SetJSON(ctx context.Context, kv KV, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &Error{Op: "marshal", Key: key, Err: err}
	}
	return kv.Set(ctx, key, string(raw))
}
