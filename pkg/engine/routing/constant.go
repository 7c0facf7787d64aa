package routing

import "errors"

var ErrFrontierExceeded = errors.New("search frontier exceeded its size limit")

const (
	UNLIMITED_FRONTIER = 0
)
