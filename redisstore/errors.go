package redisstore

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")

	ErrNilClient     = errors.New("nil redis client")
	ErrCommandFailed = errors.New("redis command failed")
	ErrScanFailed    = errors.New("redis key scan failed")
)
