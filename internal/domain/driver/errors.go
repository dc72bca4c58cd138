package driver

import "errors"

var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrDriverExists       = errors.New("driver already exists")
	ErrDriverNotAvailable = errors.New("driver is not available")
	ErrDriverOnRide       = errors.New("driver is on an active ride")
)
