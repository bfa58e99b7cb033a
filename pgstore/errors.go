package pgstore

import "errors"

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")

	ErrNilPool          = errors.New("nil connection pool")
	ErrInvalidTableName = errors.New("table name is not a valid sql identifier")

	ErrCreateFailed = errors.New("failed to create session table")
	ErrInsertFailed = errors.New("failed to insert session record")
	ErrSelectFailed = errors.New("failed to select session records")
	ErrDeleteFailed = errors.New("failed to delete session records")
)
