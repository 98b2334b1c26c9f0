package routing

import "strings"

// Match is the outcome of a successful lookup: the matched route's name
// and handler identifier plus the decoded parameter values. It has no
// identity beyond the call that produced it.
type Match struct {
	RouteName string
	Handler   string
	Params    map[string]string
}

// Match resolves a request path and HTTP method to the first registered
// route that matches structurally and, if the route restricts methods,
// admits the given method. Routes are tried in registration order; the
// first one satisfying both checks wins. Any query-string component is
// stripped first and an empty path is treated as "/". Trailing slashes
// are not normalized: a template without one does not match a path with
// one.
//
// An unmatched path fails with *NoRouteMatchedError carrying the
// attempted path.
func (t *Table) Match(path, method string) (*Match, error) {
	path = StripQuery(path)
	if path == "" {
		path = "/"
	}
	method = strings.ToUpper(method)

	for _, rt := range t.routes {
		params, ok := rt.pattern.match(path)
		if !ok {
			continue
		}
		if rt.methods != nil && !rt.methods[method] {
			continue
		}
		return &Match{
			RouteName: rt.def.Name,
			Handler:   rt.def.Handler,
			Params:    params,
		}, nil
	}

	return nil, &NoRouteMatchedError{Path: path, Method: method}
}

// StripQuery drops everything from the first '?' onward, leaving the
// path component only.
func StripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
