package storage

import (
	"context"
	"errors"
)

// ErrBackendUnavailable is an exported constant or variable used by the token cache.
var ErrBackendUnavailable = errors.New("storage backend unavailable")

// Backend defines a public type used by goTokenCache APIs.
//
// Backend instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// A Backend is an exact-key string store over one shared area plus a cookie
// side-channel. Absence is always the empty string, never an error. Keys
// returns every key currently present in the area, including entries written
// by other processes or cache instances sharing it.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)

	GetCookie(ctx context.Context, key string) (string, error)
	SetCookie(ctx context.Context, key, value string, expireDays int) error
	RemoveCookie(ctx context.Context, key string) error
}
