package goTokenCache

import (
	"strings"

	"github.com/google/uuid"
)

// NewRequestState mints an opaque correlation state token for one
// authentication attempt. Every temporary entry of the attempt embeds this
// token as its trailing delimiter-separated field.
func NewRequestState() string {
	return uuid.NewString()
}

// BuildRequestState appends caller-supplied state after the library state
// token. The library token stays first so cleanup can always recover it from
// the leading field.
func BuildRequestState(userState string) string {
	libraryState := NewRequestState()
	if userState == "" {
		return libraryState
	}
	return libraryState + ResourceDelimiter + userState
}

// SplitRequestState separates the library state token from any caller state
// appended by [BuildRequestState].
func SplitRequestState(state string) (libraryState, userState string) {
	libraryState, userState, _ = strings.Cut(state, ResourceDelimiter)
	return libraryState, userState
}
