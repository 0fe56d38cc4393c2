package common

import "errors"

var (
	// ErrNotFound is returned when the requested device is not known
	ErrNotFound = errors.New(`device not found`)
	// ErrDuplicate is returned when the device is already known
	ErrDuplicate = errors.New(`device already known`)
	// ErrClosed is returned on operations against a closed resource
	ErrClosed = errors.New(`closed`)
	// ErrTimeout is returned when an operation times out
	ErrTimeout = errors.New(`timed out`)
	// ErrInvalidAddress is returned when a device address can not be parsed
	ErrInvalidAddress = errors.New(`invalid device address`)
	// ErrEmptyGroup is returned when constructing a group with no members
	ErrEmptyGroup = errors.New(`group has no members`)
)
