package port

import "errors"

// ErrNotFound reports a lookup that matched no record.
var ErrNotFound = errors.New("record not found")
