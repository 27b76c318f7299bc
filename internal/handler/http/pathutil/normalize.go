package pathutil

import "strings"

// idRoutes maps a collection to the label used for any single child segment.
// Children collapse even when the id does not parse, so probing clients
// cannot inflate label cardinality.
var idRoutes = map[string]string{
	"/Article": "/Article/:id",
}

// NormalizePath turns a request path into a bounded metrics and span label.
// The query string and one trailing slash are dropped; static paths pass through.
//
//	NormalizePath("/Article/123")   // "/Article/:id"
//	NormalizePath("/Article/abc")   // "/Article/:id"
//	NormalizePath("/Article/")      // "/Article"
//	NormalizePath("/health")        // "/health"
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	if i := strings.LastIndexByte(path, '/'); i > 0 {
		if label, ok := idRoutes[path[:i]]; ok {
			return label
		}
	}
	return path
}
