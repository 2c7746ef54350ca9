package goTokenCache

import "errors"

var (
	// ErrStorageUnavailable is an exported constant or variable used by the token cache.
	ErrStorageUnavailable = errors.New("storage backend unavailable")
	// ErrBuilderReused is an exported constant or variable used by the token cache.
	ErrBuilderReused = errors.New("builder already used")
	// ErrStorageRequired is an exported constant or variable used by the token cache.
	ErrStorageRequired = errors.New("storage backend required")
	// ErrClientIDRequired is an exported constant or variable used by the token cache.
	ErrClientIDRequired = errors.New("client id required")
	// ErrIDTokenMissing is an exported constant or variable used by the token cache.
	ErrIDTokenMissing = errors.New("no id token cached")
	// ErrIDTokenMalformed is an exported constant or variable used by the token cache.
	ErrIDTokenMalformed = errors.New("cached id token malformed")
	// ErrNoAccessToken is an exported constant or variable used by the token cache.
	ErrNoAccessToken = errors.New("no usable access token cached")
)
