package canvas

import "errors"

var (
	// ErrCapacityExceeded is returned when a subplot is requested on a grid
	// that already holds Rows*Cols axes.
	ErrCapacityExceeded = errors.New("canvas: grid capacity exceeded")

	// ErrUnknownAxis is returned when selecting an axis id that was never allocated.
	ErrUnknownAxis = errors.New("canvas: unknown axis")

	// ErrUnknownOperation is returned when the current axis does not
	// support the requested drawing primitive.
	ErrUnknownOperation = errors.New("canvas: unknown operation")

	// ErrLookupFailure is returned by data backends when a dropped
	// identifier does not resolve to a recordable element.
	ErrLookupFailure = errors.New("canvas: element lookup failed")

	ErrBadGrid       = errors.New("canvas: rows and cols must be positive")
	ErrNoPendingDrop = errors.New("canvas: no drop waiting for a recording mode")
	ErrMenuOpen      = errors.New("canvas: recording mode menu already open")
)
