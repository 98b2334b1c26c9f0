// Package routecfg loads route definitions from YAML configuration
// files and converts them into routing table input.
//
// A routes file lists route entries:
//
//	routes:
//	  - name: overview_files
//	    path: /files/{subpath}
//	    handler: "FilesController::overview"
//	  - name: article
//	    path: /articles/{category}/{id}
//	    handler: "ArticleController::show"
//	    methods: [GET]
//	    requirements:
//	      id: "[0-9]+"
//	    defaults:
//	      category: news
package routecfg

import (
	"fmt"
	"strings"

	"github.com/JoeSaf/personal-management-system/routing"
)

// Route describes one route entry in a routes file.
type Route struct {
	Name         string            `yaml:"name"`
	Path         string            `yaml:"path"`
	Handler      string            `yaml:"handler"`
	Methods      []string          `yaml:"methods,omitempty"`
	Defaults     map[string]string `yaml:"defaults,omitempty"`
	Requirements map[string]string `yaml:"requirements,omitempty"`
}

// File is the root of a routes YAML document.
type File struct {
	Routes []Route `yaml:"routes"`
}

// knownMethods are the HTTP method tokens accepted in a route entry.
var knownMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"OPTIONS": true,
}

// Validate checks the file for configuration bugs that the routing
// table cannot report with file-level context: empty names or paths,
// reused names, paths without a leading slash, and unknown HTTP method
// tokens.
func (f *File) Validate() error {
	seen := make(map[string]int, len(f.Routes))
	for i, r := range f.Routes {
		if r.Name == "" {
			return fmt.Errorf("route %d: name is required", i)
		}
		if prev, dup := seen[r.Name]; dup {
			return fmt.Errorf("route %d: name %q already used by route %d", i, r.Name, prev)
		}
		seen[r.Name] = i

		if r.Path == "" {
			return fmt.Errorf("route %q: path is required", r.Name)
		}
		if !strings.HasPrefix(r.Path, "/") {
			return fmt.Errorf("route %q: path %q must start with /", r.Name, r.Path)
		}
		if r.Handler == "" {
			return fmt.Errorf("route %q: handler is required", r.Name)
		}
		for _, m := range r.Methods {
			if !knownMethods[strings.ToUpper(m)] {
				return fmt.Errorf("route %q: unknown HTTP method %q", r.Name, m)
			}
		}
	}
	return nil
}

// Definitions converts the file entries to routing definitions in file
// order.
func (f *File) Definitions() []routing.Definition {
	defs := make([]routing.Definition, len(f.Routes))
	for i, r := range f.Routes {
		methods := make([]string, len(r.Methods))
		for j, m := range r.Methods {
			methods[j] = strings.ToUpper(m)
		}
		if len(methods) == 0 {
			methods = nil
		}
		defs[i] = routing.Definition{
			Name:         r.Name,
			Path:         r.Path,
			Handler:      r.Handler,
			Methods:      methods,
			Defaults:     r.Defaults,
			Requirements: r.Requirements,
		}
	}
	return defs
}
