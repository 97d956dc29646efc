package entities

import "github.com/rs/xid"

// NewID mints a fresh collision-resistant short identifier. Adapters must
// only call this when foreign input omits an id; an id present in the
// source is always preserved as-is.
func NewID() string {
	return xid.New().String()
}
