package feeds

import (
	"errors"
	"net/http"
)

var (
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
