package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorInvalidInput marks validation failures so callers can distinguish them
// from data-access errors.
var ErrorInvalidInput = errors.New("invalid input")
