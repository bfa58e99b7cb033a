package sessionpool

import "errors"

var (
	// ErrEmptyID indicates a record cannot be saved without a session id
	ErrEmptyID = errors.New("sessionpool.empty_id")

	// ErrNilStore indicates no store was provided to the cleaner
	ErrNilStore = errors.New("sessionpool.nil_store")
)
