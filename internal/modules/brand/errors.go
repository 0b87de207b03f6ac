package brand

import "errors"

var ErrProfileNotFound = errors.New("brand profile not found")
