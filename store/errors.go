package store

import "fmt"

// DatabaseError wraps any connectivity or query failure. Op is a short code
// naming the failed step, used in logs.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}
