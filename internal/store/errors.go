package store

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrStoreClosed    = errors.New("store is closed")
)
