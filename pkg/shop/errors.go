package shop

import "errors"

// ErrCustomerConsumed is the panic value raised when a customer value is used
// again after a transition has already consumed it. Legal call sequences never
// trigger it; hitting it means a caller kept an alias to a pre-transition
// value, which the type system alone cannot prevent in Go.
var ErrCustomerConsumed = errors.New("customer value already consumed by a previous transition")

// ErrReceiptNotFound is returned by receipt stores when no receipt exists for
// the requested session ID.
var ErrReceiptNotFound = errors.New("receipt not found")
