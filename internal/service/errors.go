package service

import "errors"

var (
	ErrCommunication   = errors.New("cinema service is unreachable")
	ErrServiceRejected = errors.New("cinema service rejected the request")
	ErrUnknownFilm     = errors.New("unknown film")
	ErrInvalidRequest  = errors.New("invalid input")
)
