package types

import "strings"

// DefaultScheme is the resource key scheme used when none is configured.
const DefaultScheme = "my-session"

// MakeKey builds a resource key of the form {scheme}:/{path}.
func MakeKey(scheme, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return scheme + ":" + path
}

// KeyScheme returns the scheme portion of a resource key, or "" when the
// key has no scheme separator.
func KeyScheme(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return ""
}

// KeyPath returns the path portion of a resource key, including its
// leading slash. A key without a scheme separator is returned unchanged.
func KeyPath(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[i+1:]
	}
	return key
}
