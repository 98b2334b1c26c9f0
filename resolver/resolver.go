// Package resolver exposes the routing operations the application
// needs: resolving a URL to its handler or route name, and classifying
// whether a URL is the canonical overview page of an upload module.
//
// Unmatched URLs on the request path are a routine outcome: resolution
// returns an absent result and records a structured diagnostic instead
// of failing. Generation and table construction errors still propagate,
// since those indicate configuration or programmer bugs.
package resolver

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/JoeSaf/personal-management-system/routing"
)

// subPathParam is the placeholder name overview route templates bind
// their sub-path to.
const subPathParam = "subpath"

// overviewDecodePasses is how many percent-decoding rounds the overview
// comparison applies: one for the generator's own encoding pass and one
// for the caller's pre-encoding of the sub-path.
const overviewDecodePasses = 2

// RequestInfo supplies facts about the inbound request that the
// resolver does not compute itself.
type RequestInfo interface {
	// Method returns the HTTP method of the current request.
	Method() string
}

// Config configures a Resolver.
type Config struct {
	// Table is the route table to resolve against. Required.
	Table *routing.Table

	// Request reports the current request method. Optional; without it
	// the resolver matches as if the request were a GET.
	Request RequestInfo

	// Logger receives diagnostic events. Optional; defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// Resolver is the thin orchestration layer over the routing table. It
// holds no mutable state and is safe for concurrent use.
type Resolver struct {
	table *routing.Table
	req   RequestInfo
	log   *zap.Logger
}

// New creates a resolver from the given configuration.
func New(cfg Config) (*Resolver, error) {
	if cfg.Table == nil {
		return nil, errors.New("resolver: route table is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{table: cfg.Table, req: cfg.Request, log: log}, nil
}

// ResolveHandler resolves a URL to the handler identifier registered
// for it. Any query-string component is stripped before matching. An
// unmatched URL yields ("", false) with a no_handler_found diagnostic;
// no match failure is ever surfaced as an error.
func (r *Resolver) ResolveHandler(url string) (string, bool) {
	normalized := routing.StripQuery(url)
	m, err := r.table.Match(normalized, r.method())
	if err != nil {
		r.emit(eventNoHandlerFound, url, normalized, err)
		return "", false
	}
	return m.Handler, true
}

// ResolveRouteName resolves a URI to the name of the route registered
// for it. An unmatched URI yields ("", false) with a no_route_found
// diagnostic. The diagnostic is suppressed when the current request
// used the OPTIONS method, since preflight probes for unrouted paths
// are expected noise.
func (r *Resolver) ResolveRouteName(uri string) (string, bool) {
	normalized := routing.StripQuery(uri)
	m, err := r.table.Match(normalized, r.method())
	if err != nil {
		if r.method() != http.MethodOptions {
			r.emit(eventNoRouteFound, uri, normalized, err)
		}
		return "", false
	}
	return m.RouteName, true
}

// MatchesAnyOverviewRoute reports whether url is the canonical overview
// page URL of any upload module for the given sub-path. The sub-path is
// pre-encoded by the caller, so both URLs are compared after two
// decoding passes. The check short-circuits on the first equal match.
func (r *Resolver) MatchesAnyOverviewRoute(url, subPath string) bool {
	for _, module := range uploadModules {
		name := overviewRouteNames[module]
		generated, err := r.table.Generate(name, subPathParam, subPath)
		if err != nil {
			// Overview routes are fixed configuration; a generation
			// failure here means the table is out of sync with the
			// module registry.
			r.log.Error("overview route generation failed",
				zap.String("module", module),
				zap.String("route", name),
				zap.Error(err),
			)
			continue
		}
		if routing.EqualCanonical(url, generated, overviewDecodePasses) {
			return true
		}
	}
	return false
}

// method returns the current request method, defaulting to GET when no
// request context provider is configured.
func (r *Resolver) method() string {
	if r.req != nil {
		return r.req.Method()
	}
	return http.MethodGet
}
