package deserializer

import "errors"

var errRecursionLimitInvalid = errors.New("objprop: recursion limit must be positive")
