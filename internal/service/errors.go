package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrContentNotFound means the CMS answered successfully but no document
	// matched the query.
	ErrContentNotFound = errors.New("content not found")

	// ErrContentUnavailable means the CMS client could not be constructed,
	// usually because of missing or invalid configuration.
	ErrContentUnavailable = errors.New("content source unavailable")
)
