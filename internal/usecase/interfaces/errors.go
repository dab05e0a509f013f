package interfaces

import "errors"

// ErrDuplicate is returned by repositories when a create hits an existing key.
var ErrDuplicate = errors.New("item already exists")
