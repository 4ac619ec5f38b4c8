package store

import "errors"

var (
	ErrQueryFailed     = errors.New("store: query failed")
	ErrScanFailed      = errors.New("store: row scan failed")
	ErrSetDialect      = errors.New("store: failed to set migration dialect")
	ErrApplyMigrations = errors.New("store: failed to apply migrations")
)
