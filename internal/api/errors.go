package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized matches a 401 from the remote API.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches a 404 from the remote API.
	ErrNotFound = errors.New("not found")
	// ErrEmptyToken is returned when login succeeds but carries no token.
	ErrEmptyToken = errors.New("login response carried no access token")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s: %s", e.Method, e.Path, e.Status)
}

// Is lets errors.Is match ErrUnauthorized and ErrNotFound by status code.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}
