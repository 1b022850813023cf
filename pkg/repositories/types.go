package repositories

import "fmt"

type ErrUnsupportedScheme struct {
	Scheme string
}

func (e *ErrUnsupportedScheme) Error() string {
	return fmt.Sprintf("unsupported save store scheme %q", e.Scheme)
}

func IsUnsupportedScheme(err error) bool {
	_, ok := err.(*ErrUnsupportedScheme)
	return ok
}
