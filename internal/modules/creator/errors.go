package creator

import "errors"

var ErrProfileNotFound = errors.New("creator profile not found")
