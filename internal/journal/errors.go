package journal

import "errors"

// ErrEndOfSequence is returned by Cursor.Peek and Cursor.Pop once the
// underlying sequence is exhausted. Section parsers catch it locally and
// convert it into "stop this section".
var ErrEndOfSequence = errors.New("end of sequence")
