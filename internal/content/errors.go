package content

import "fmt"

// ErrInvalidContent indicates that a content table failed to parse or
// does not conform to the content schema.
type ErrInvalidContent struct {
	Err error
}

func (e *ErrInvalidContent) Error() string {
	return fmt.Sprintf("invalid content table: %v", e.Err)
}

func (e *ErrInvalidContent) Unwrap() error { return e.Err }
