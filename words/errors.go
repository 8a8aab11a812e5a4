package words

import "errors"

// ErrNilAlphabet is returned by every constructor when the alphabet
// pointer is nil. Enumeration itself cannot fail: a cursor built over a
// valid alphabet is total, and running out of words is signaled by
// Next's false result, never by an error.
var ErrNilAlphabet = errors.New("words: alphabet is nil")
