package catalog

import "errors"

var ErrCatalogTooLarge = errors.New("catalog exceeds configured maximum size")
var ErrInvalidLimit = errors.New("invalid catalog size limit")
var ErrUnknownID = errors.New("unknown word id")
