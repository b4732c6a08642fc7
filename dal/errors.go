package dal

import "errors"

var (
	ErrDuplicateAccount = errors.New("account already exists")
	ErrAccountNotFound  = errors.New("account not found")
	ErrInvalidReblog    = errors.New("reblog server ID and reblog account ID must both be set or both be empty")
)
