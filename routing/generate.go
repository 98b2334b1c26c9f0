package routing

import (
	"fmt"
	"net/url"
	"strings"
)

// Generate renders a concrete path for the named route. Parameters are
// supplied as ordered key/value pairs:
//
//	table.Generate("article", "category", "tech", "id", "42")
//
// Every placeholder takes its value from the pairs, falling back to the
// definition's defaults; a placeholder with neither fails with
// *MissingParameterError. Values are validated against the placeholder
// constraint and percent-encoded exactly once when substituted; a
// caller that pre-encodes a value gets it encoded again. Pairs that do
// not correspond to a placeholder are appended as a query string in the
// order supplied.
//
// An unregistered name fails with ErrRouteNotFound.
func (t *Table) Generate(name string, pairs ...string) (string, error) {
	cr, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("routing: no route named %q: %w", name, ErrRouteNotFound)
	}

	keys, values, err := orderedPairs(pairs...)
	if err != nil {
		return "", err
	}

	used := make(map[string]bool, len(cr.pattern.varsN))
	path, err := cr.pattern.buildPath(name, values, func(key string) {
		used[key] = true
	})
	if err != nil {
		return "", err
	}

	var query strings.Builder
	for _, key := range keys {
		if used[key] {
			continue
		}
		if query.Len() > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(values[key]))
	}
	if query.Len() > 0 {
		return path + "?" + query.String(), nil
	}
	return path, nil
}

// orderedPairs converts variadic key/value parameters to a map while
// preserving the order keys were first supplied in.
func orderedPairs(pairs ...string) ([]string, map[string]string, error) {
	if len(pairs)%2 != 0 {
		return nil, nil, fmt.Errorf("routing: number of parameters must be multiple of 2, got %v", pairs)
	}
	keys := make([]string, 0, len(pairs)/2)
	values := make(map[string]string, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i]
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = pairs[i+1]
	}
	return keys, values, nil
}
