package types

import "errors"

var (
	ErrInvalidFloor      = errors.New("invalid floor")
	ErrInvalidElevatorID = errors.New("invalid elevator id")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrOutOfService      = errors.New("elevator in maintenance")
	ErrOverCapacity      = errors.New("load outside capacity")
	ErrInvalidConfig     = errors.New("invalid config")
)
