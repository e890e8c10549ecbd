// Package localstate persists small key-value state for the client, most
// importantly the session triple (token, username, admin flag).
package localstate

import "context"

// Repository is a string key-value store. Get returns ("", false, nil)
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
