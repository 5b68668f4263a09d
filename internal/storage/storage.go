// Package storage is the durable local-storage analog: a flat string
// key→value namespace holding the session token, the serialized user
// record and the serialized appointment set.
package storage

import (
	"context"
	"errors"
)

// Keys of the persisted state layout.
const (
	KeyToken        = "token"
	KeyUser         = "user"
	KeyAppointments = "appointments"
)

var ErrNotFound = errors.New("storage: key not found")

type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
