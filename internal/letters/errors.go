package letters

import "errors"

var ErrWordLength = errors.New("word has wrong length")
var ErrInvalidLetter = errors.New("word contains a non-letter character")
var ErrRepeatedLetter = errors.New("word repeats a letter")
