package broadcast

import "errors"

// ErrClosed is returned when broadcasting to or closing an already closed
// broadcaster.
var ErrClosed = errors.New("broadcaster is closed")
