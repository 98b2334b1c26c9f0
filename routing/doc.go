// Package routing implements the route matching and reverse-generation
// engine: a table of compiled route definitions, path-to-route matching
// with parameter extraction, and canonical URL generation from a route
// name plus parameters.
//
// # Route Table
//
// A Table is built once at startup from static route definitions and is
// read-only afterwards, so concurrent lookups need no locking:
//
//	table, err := routing.NewTable(
//		routing.Definition{
//			Name:    "overview_files",
//			Path:    "/files/{subpath}",
//			Handler: "FilesController::overview",
//		},
//		routing.Definition{
//			Name:    "article",
//			Path:    "/articles/{category}/{id:int}",
//			Handler: "ArticleController::show",
//			Methods: []string{"GET"},
//		},
//	)
//
// # Path Templates
//
// Templates mix literal text with placeholders enclosed in curly braces,
// optionally followed by a colon and a constraint:
//
//	/articles/{category}/{id:[0-9]+}
//
// A placeholder without a constraint matches one path segment (one or
// more non-slash characters). Constraints may also be given per
// placeholder through Definition.Requirements.
//
// # Constraint Macros
//
// Common constraints can be named instead of spelled out:
//
//	/users/{id:uuid}
//	/articles/{page:int}
//	/posts/{slug:slug}
//
// Available macros: uuid, int, float, slug, alpha, alphanum, date, hex,
// domain. A name after the colon that is not a known macro is treated
// as a raw regular expression. The domain macro additionally caps
// values at 253 characters during generation, per RFC 1035.
//
// # Matching
//
// Table.Match resolves a path and HTTP method to the first structurally
// matching route, in registration order, whose method restriction (if
// any) admits the request method. Registration order is the tie-break
// policy: register more specific routes before more general ones. Any
// query-string component is stripped before matching, an empty path is
// treated as "/", and trailing slashes are not normalized away.
// Extracted parameter values are percent-decoded:
//
//	m, err := table.Match("/files/a%20b", "GET")
//	// m.RouteName == "overview_files", m.Params["subpath"] == "a b"
//
// An unmatched path yields a *NoRouteMatchedError. This is a routine
// outcome, not a programmer error; callers on the request path convert
// it to an absent result.
//
// # Generation
//
// Table.Generate renders a concrete path for a named route. Parameters
// are supplied as ordered key/value pairs; each substituted value is
// percent-encoded exactly once, and pairs that do not correspond to a
// placeholder are appended as a query string in the order supplied:
//
//	url, err := table.Generate("overview_files", "subpath", "a b")
//	// url == "/files/a%20b"
//
// A placeholder with neither a supplied value nor a default fails with
// *MissingParameterError. Defaults declared on the definition fill in
// for omitted parameters, and a trailing placeholder with a default is
// optional at match time.
//
// # Canonical Comparison
//
// EqualCanonical compares two URLs after percent-decoding each of them a
// caller-chosen number of times. Callers that pre-encode a parameter
// before generation pass 2 to undo both their own pass and the
// generator's.
package routing
