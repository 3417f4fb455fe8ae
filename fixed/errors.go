package fixed

import "errors"

var (
	// ErrInvalidWidth signals a key width outside [1, MaxWidth].
	ErrInvalidWidth = errors.New("fixed: invalid key width")
	// ErrWidthMismatch signals a key or output buffer not matching the tree's width.
	ErrWidthMismatch = errors.New("fixed: buffer does not match key width")
	// ErrKeyTooLarge signals that input exceeds MaxWidth bytes.
	ErrKeyTooLarge = errors.New("fixed: key exceeds maximum width")
)
