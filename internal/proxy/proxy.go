package proxy

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

type Protocol string

const (
	HTTP  Protocol = "http"
	HTTPS Protocol = "https"
)

// entries shorter than this can't hold a host and a port
const minEntryLength = 7

type Endpoint struct {
	Protocol Protocol
	Host     string
	Port     int
	userInfo string
}

// ConnectionConfig is what a browser session needs to route through a proxy.
type ConnectionConfig struct {
	Server   string
	Username string
	Password string
}

func (c ConnectionConfig) HasAuth() bool {
	return c.Username != ""
}

// ParseEndpoint normalizes raw into scheme://[user:pass@]host:port.
// A bare host:port is taken as http.
func ParseEndpoint(raw string) (Endpoint, error) {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, ":") || len(s) < minEntryLength {
		return Endpoint{}, ErrInvalidFormat
	}

	if !strings.Contains(s, "://") {
		s = string(HTTP) + "://" + s
	}

	scheme, rest, _ := strings.Cut(s, "://")
	protocol := Protocol(strings.ToLower(scheme))
	if protocol != HTTP && protocol != HTTPS {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	var userInfo string
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		userInfo, rest = rest[:at], rest[at+1:]
	}
	rest = strings.TrimSuffix(rest, "/")

	host, portStr, err := net.SplitHostPort(rest)
	if err != nil || host == "" {
		return Endpoint{}, ErrInvalidFormat
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: bad port %q", ErrInvalidFormat, portStr)
	}

	return Endpoint{
		Protocol: protocol,
		Host:     host,
		Port:     port,
		userInfo: userInfo,
	}, nil
}

func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// Server is the endpoint without credentials, safe to log.
func (e Endpoint) Server() string {
	return string(e.Protocol) + "://" + e.Address()
}

func (e Endpoint) HasCredentials() bool {
	return e.userInfo != ""
}

func (e Endpoint) String() string {
	if e.userInfo == "" {
		return e.Server()
	}
	return string(e.Protocol) + "://" + e.userInfo + "@" + e.Address()
}

// URL includes credentials when they are well formed.
func (e Endpoint) URL() *url.URL {
	u := &url.URL{Scheme: string(e.Protocol), Host: e.Address()}
	if cfg, err := SessionConfig(e); err == nil && cfg.HasAuth() {
		u.User = url.UserPassword(cfg.Username, cfg.Password)
	}
	return u
}

// SessionConfig splits the optional user:pass segment off the endpoint.
func SessionConfig(e Endpoint) (ConnectionConfig, error) {
	cfg := ConnectionConfig{Server: e.Server()}
	if e.userInfo == "" {
		return cfg, nil
	}

	user, pass, ok := strings.Cut(e.userInfo, ":")
	if !ok || user == "" {
		return ConnectionConfig{}, fmt.Errorf("%s: %w", e.Server(), ErrMalformedCredentials)
	}

	cfg.Username = user
	cfg.Password = pass
	return cfg, nil
}
