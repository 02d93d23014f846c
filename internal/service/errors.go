package service

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// Failure taxonomy shared by services and handlers. Handlers map these onto
// the response envelope's machine-readable kind; anything unrecognized
// collapses to a store failure.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation failed")
	ErrStore            = errors.New("store failure")
	ErrInFlight         = errors.New("request already in flight")
)

// TxRunner is the slice of *gorm.DB the services need for multi-step
// cascades. Tests substitute a runner that hands the callback a nil tx,
// which fake repositories ignore.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
