package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned by providers for non-2xx HTTP responses so
// that callers can branch on the status code instead of sniffing error
// strings.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Code, e.Body)
}

// IsRateLimited reports whether err carries an HTTP 429 from the
// provider.
func IsRateLimited(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusTooManyRequests
}
