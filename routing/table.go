package routing

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Definition describes a single route before compilation.
type Definition struct {
	// Name uniquely identifies the route within a table.
	Name string

	// Path is the template, literal text mixed with {name} or
	// {name:constraint} placeholders.
	Path string

	// Handler is the opaque handler identifier the route dispatches to,
	// conventionally "Class::method".
	Handler string

	// Methods restricts the HTTP methods the route matches. Empty means
	// no restriction.
	Methods []string

	// Defaults supplies placeholder values used when generation omits a
	// parameter. A default on the trailing placeholder also makes its
	// segment optional at match time.
	Defaults map[string]string

	// Requirements constrains placeholders that have no inline
	// constraint, keyed by placeholder name.
	Requirements map[string]string
}

// compiledRoute pairs a definition with its compiled pattern and
// normalized method set.
type compiledRoute struct {
	def     Definition
	pattern *pattern
	methods map[string]bool
}

// Table holds compiled routes in registration order plus a unique-name
// index. A table is built once at startup and must not be mutated
// afterwards; lookups are then safe from any number of goroutines
// without locking.
type Table struct {
	routes []*compiledRoute
	byName map[string]*compiledRoute
}

// NewTable compiles the given definitions in order and returns the
// resulting table. Compilation errors are fatal configuration bugs and
// should abort startup.
func NewTable(defs ...Definition) (*Table, error) {
	t := &Table{byName: make(map[string]*compiledRoute, len(defs))}
	for _, def := range defs {
		if err := t.Add(def); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add compiles the definition and appends it to the table. It fails
// with *DuplicateRouteNameError if the name is already registered and
// *InvalidPatternError if the template cannot be compiled.
//
// Add is a construction-time operation; it must not be called once the
// table is in use.
func (t *Table) Add(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("routing: route with path %q has no name", def.Path)
	}
	if _, exists := t.byName[def.Name]; exists {
		return &DuplicateRouteNameError{Name: def.Name}
	}

	p, err := compilePattern(def.Path, def.Requirements, def.Defaults)
	if err != nil {
		return err
	}

	var methods map[string]bool
	if len(def.Methods) > 0 {
		methods = make(map[string]bool, len(def.Methods))
		for _, m := range def.Methods {
			methods[strings.ToUpper(m)] = true
		}
	}

	cr := &compiledRoute{def: def, pattern: p, methods: methods}
	t.routes = append(t.routes, cr)
	t.byName[def.Name] = cr
	return nil
}

// FindByName returns the definition registered under name. It fails
// with ErrRouteNotFound if the name is absent. Like Definitions, the
// returned definition is a deep copy.
func (t *Table) FindByName(name string) (Definition, error) {
	cr, ok := t.byName[name]
	if !ok {
		return Definition{}, fmt.Errorf("routing: no route named %q: %w", name, ErrRouteNotFound)
	}
	return cr.def.clone(), nil
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// Definitions returns the registered definitions in registration order.
// The definitions are deep copies: mutating them cannot reach into the
// table's state.
func (t *Table) Definitions() []Definition {
	defs := make([]Definition, len(t.routes))
	for i, cr := range t.routes {
		defs[i] = cr.def.clone()
	}
	return defs
}

// clone returns a copy of the definition whose slice and map fields do
// not alias the receiver's.
func (d Definition) clone() Definition {
	d.Methods = slices.Clone(d.Methods)
	d.Defaults = maps.Clone(d.Defaults)
	d.Requirements = maps.Clone(d.Requirements)
	return d
}
