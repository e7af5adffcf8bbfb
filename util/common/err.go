// Package common holds small error helpers shared across packages.
package common

import (
	"errors"
	"net"
)

// Combine joins the non-nil errors, or returns nil if there are none.
func Combine(errs ...error) error {
	return errors.Join(errs...)
}

// IsClosedConnErr reports whether err comes from using an already closed listener or connection.
func IsClosedConnErr(err error) bool {
	return errors.Is(err, net.ErrClosed)
}
