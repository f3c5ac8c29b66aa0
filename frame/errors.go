package frame

import "errors"

var (
	// ErrOrderExceeded is returned when a query requests a derivative
	// order greater than the FrameSystem's configured order.
	ErrOrderExceeded = errors.New("frame: requested order exceeds system order")
	// ErrLightTimeNoConverge is returned when LightTimeState's
	// fixed-point iteration fails to converge within the configured
	// iteration budget.
	ErrLightTimeNoConverge = errors.New("frame: light-time iteration did not converge")
)
