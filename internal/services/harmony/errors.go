package harmony

import "errors"

var ErrInvalidConfig = errors.New("invalid pipeline config")
var ErrUnknownStrategy = errors.New("unknown join strategy")
