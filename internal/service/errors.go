package service

import "errors"

var (
	ErrClanNotFound     = errors.New("clan not found")
	ErrClanNameRequired = errors.New("clan name is required")
	ErrMalformedCSV     = errors.New("malformed csv")
)
