package regexp

import "errors"

// ErrEmptyPattern indicates that a delimited pattern was empty or contained
// only whitespace.
var ErrEmptyPattern = errors.New("empty regular expression")

// ErrInvalidDelimiter indicates that the first character of a delimited
// pattern cannot act as a delimiter.
var ErrInvalidDelimiter = errors.New("delimiter must not be alphanumeric, backslash, or NUL")

// ErrMissingDelimiter indicates that a delimited pattern has no closing
// delimiter.
var ErrMissingDelimiter = errors.New("no ending delimiter")

// ErrUnknownModifier indicates that a character after the closing delimiter
// is not a recognised modifier.
var ErrUnknownModifier = errors.New("unknown modifier")
