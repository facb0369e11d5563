// Package credentials persists the device-local credential record: the
// access token and the serialized user, stored as key-value entries.
package credentials

import (
	"context"
)

// Fixed keys of the persisted credential record.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
