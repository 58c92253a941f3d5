// Package id mints ULID identifiers for the records this service writes
// itself (the seed tool's demo user and notification).
package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID. Ids minted by the same process sort in creation
// order, so seeded records stay stable to list and diff, and they are safe
// as DynamoDB partition keys.
func New() string {
	return ulid.Make().String()
}
