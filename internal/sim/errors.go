package sim

import "errors"

var (
	ErrBadHandling = errors.New("invalid handling profile")
	ErrBadWall     = errors.New("invalid wall")
)
