package join

import "errors"

var ErrArityOverflow = errors.New("joined arity exceeds the record limit")
var ErrKeying = errors.New("operand is partitioned by the wrong word")
