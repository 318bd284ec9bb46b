package transport

import "fmt"

// ErrorKind classifies failures raised by the network path.
type ErrorKind string

const (
	// KindBusiness means the envelope arrived intact but reported a
	// non-success code.
	KindBusiness ErrorKind = "business"
	// KindTransport means the backend answered with an HTTP-level error.
	KindTransport ErrorKind = "transport"
	// KindConnectivity means no response was received at all (timeout,
	// DNS failure, connection refused).
	KindConnectivity ErrorKind = "connectivity"
)

// Generic messages used when the backend supplies none. Raw transport
// diagnostics are never forwarded to callers.
const (
	msgBusinessFailure    = "business error"
	msgNetworkUnavailable = "network unavailable or no response from server"
)

// Error is the uniform failure type for every call through the network
// backend. Code is the envelope's business code, or the HTTP status when
// the envelope carried none. Body holds the raw response for diagnostics
// when one was received.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
	Status  int
	Body    []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Kind, e.Code, e.Message)
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	te, ok := err.(*Error)
	return ok && te.Kind == kind
}
