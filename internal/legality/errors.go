package legality

import "errors"

// ErrNilRecord is returned when a batch entry has no record.
var ErrNilRecord = errors.New("nil record")
