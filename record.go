package goTokenCache

import "encoding/json"

// AccessTokenKey defines a public type used by goTokenCache APIs.
//
// AccessTokenKey instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// The serialized form of an AccessTokenKey is a structured physical key: it is
// globally unique by construction and passes through namespacing unchanged.
type AccessTokenKey struct {
	Authority             string `json:"authority"`
	ClientID              string `json:"clientId"`
	Scopes                string `json:"scopes"`
	HomeAccountIdentifier string `json:"homeAccountIdentifier"`
}

// AccessTokenValue defines a public type used by goTokenCache APIs.
//
// AccessTokenValue instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AccessTokenValue struct {
	AccessToken           string `json:"accessToken"`
	IDToken               string `json:"idToken"`
	ExpiresIn             string `json:"expiresIn"`
	HomeAccountIdentifier string `json:"homeAccountIdentifier"`
}

// AccessTokenCacheItem defines a public type used by goTokenCache APIs.
//
// AccessTokenCacheItem instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// An AccessTokenCacheItem is reconstructed at read time from one cache entry
// whose key and value both parse as structured records. The cache does not own
// the record format; it only filters and pairs.
type AccessTokenCacheItem struct {
	Key   AccessTokenKey
	Value AccessTokenValue
}

// MarshalKey describes the marshalkey operation and its observable behavior.
//
// MarshalKey may return an error when input validation, dependency calls, or security checks fail.
// MarshalKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k AccessTokenKey) MarshalKey() (string, error) {
	data, err := json.Marshal(k)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MarshalValue describes the marshalvalue operation and its observable behavior.
//
// MarshalValue may return an error when input validation, dependency calls, or security checks fail.
// MarshalValue does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (v AccessTokenValue) MarshalValue() (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseAccessTokenKey attempts to decode a physical key as a structured
// access-token key. Failure is the expected signal for "not a token record",
// never an error condition.
func parseAccessTokenKey(raw string) (AccessTokenKey, bool) {
	if classifyKey(raw) != keyClassStructured {
		return AccessTokenKey{}, false
	}

	var key AccessTokenKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return AccessTokenKey{}, false
	}
	return key, true
}

func parseAccessTokenValue(raw string) (AccessTokenValue, bool) {
	var value AccessTokenValue
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return AccessTokenValue{}, false
	}
	return value, true
}
