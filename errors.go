package option

import "errors"

// ErrNoSuchElement is returned when the value of a None is requested.
var ErrNoSuchElement = errors.New("no such element")
