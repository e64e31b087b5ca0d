package handlers

import "strings"

// NormalizePath strips the deployment-stage prefix (the first path segment)
// from a raw request path and returns the canonical route path. A path that
// holds only the stage segment normalizes to "/".
func NormalizePath(rawPath string) string {
	trimmed := strings.TrimPrefix(rawPath, "/")
	if trimmed == "" {
		return "/"
	}

	segments := strings.Split(trimmed, "/")
	rest := strings.Join(segments[1:], "/")
	if rest == "" {
		return "/"
	}

	return "/" + rest
}
