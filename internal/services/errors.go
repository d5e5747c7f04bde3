package services

import (
	"errors"
)

// Sentinel errors surfaced to handlers. Handlers map these onto HTTP status
// codes; anything else is treated as a transient store failure.
var (
	ErrBacentaNotFound     = errors.New("bacenta not found")
	ErrRecordNotFound      = errors.New("bussing record not found")
	ErrServiceLogNotFound  = errors.New("bacenta has no current service log")
	ErrMemberNotFound      = errors.New("member not found")
	ErrUnreconciledPayment = errors.New("payment reference matches no bussing record")
	ErrAlreadyAllocated    = errors.New("bussing record already has a transaction id")
	ErrNotConfirmed        = errors.New("bussing record has not been confirmed by an admin")
	ErrInvalidAttendance   = errors.New("attendance must be a non-negative number")
	ErrMissingPicture      = errors.New("either a picture url or picture data is required")
	ErrNotSwellDate        = errors.New("service day is not marked as swell")
	ErrSwellDate           = errors.New("service day is marked as swell; use the swell top-up")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
