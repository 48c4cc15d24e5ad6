package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrCommunication reports that a call did not complete because of the
	// network or the connection: the service is unreachable, the deadline
	// expired, or the stream broke.
	ErrCommunication = errors.New("communication error")

	// ErrServiceRejected reports that the service received a well-formed
	// call and refused it.
	ErrServiceRejected = errors.New("service rejected the request")

	// ErrNotFound reports that the requested entity does not exist. It is a
	// kind of [ErrServiceRejected].
	ErrNotFound = fmt.Errorf("%w: not found", ErrServiceRejected)
)
