package common

import "errors"

var (
	ErrorNonFinite       = errors.New("non-finite coordinate")
	ErrorUnknownMethod   = errors.New("unknown decimation method")
	ErrorUnknownStrategy = errors.New("unknown decimation strategy")
)
