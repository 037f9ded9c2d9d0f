package proxy

import "errors"

// Sentinel errors for proxy parsing
var (
	// ErrInvalidFormat is returned for entries that are not host:port shaped
	ErrInvalidFormat = errors.New("invalid proxy format")

	// ErrUnsupportedScheme is returned for schemes other than http and https
	ErrUnsupportedScheme = errors.New("unsupported proxy scheme")

	// ErrMalformedCredentials is returned when the user info has no password separator
	ErrMalformedCredentials = errors.New("malformed proxy credentials")
)
