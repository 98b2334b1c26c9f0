package routing

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// defaultConstraint matches one path segment.
const defaultConstraint = "[^/]+"

// pattern is a compiled path template: an anchored matching regexp, a
// reverse template for URL generation, and per-placeholder metadata.
type pattern struct {
	// template is the original template string.
	template string
	// regexp is the compiled matching expression, anchored at both ends.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// varsN are the placeholder names in template order.
	varsN []string
	// varsR are the constraint matchers, one per placeholder.
	varsR []varMatcher
	// defaults holds placeholder default values.
	defaults map[string]string
}

// compilePattern parses a path template with {name} or {name:constraint}
// placeholders. A placeholder without an inline constraint uses the
// matching entry in requirements, or one path segment by default. A
// trailing placeholder with a default value is optional at match time.
func compilePattern(tpl string, requirements, defaults map[string]string) (*pattern, error) {
	idxs, err := braceIndices(tpl)
	if err != nil {
		return nil, &InvalidPatternError{Template: tpl, Reason: err.Error()}
	}

	var (
		matchExpr bytes.Buffer
		reverse   bytes.Buffer
		varsN     []string
		varsR     []varMatcher
		end       int
	)

	matchExpr.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		raw := tpl[end:idxs[i]]
		end = idxs[i+1]

		parts := strings.SplitN(tpl[idxs[i]+1:end-1], ":", 2)
		name := parts[0]
		if name == "" {
			return nil, &InvalidPatternError{
				Template: tpl,
				Reason:   fmt.Sprintf("missing placeholder name in %q", tpl[idxs[i]:end]),
			}
		}

		constraint := defaultConstraint
		var matcher varMatcher
		switch {
		case len(parts) == 2:
			constraint, matcher = expandMacro(parts[1])
		case requirements[name] != "":
			constraint = requirements[name]
		}

		_, hasDefault := defaults[name]
		last := i+2 == len(idxs) && end == len(tpl)
		if last && hasDefault && strings.HasSuffix(raw, "/") {
			// The whole trailing segment may be absent; the default fills in.
			fmt.Fprintf(&matchExpr, "%s(?:/(%s))?",
				regexp.QuoteMeta(strings.TrimSuffix(raw, "/")), constraint)
		} else {
			fmt.Fprintf(&matchExpr, "%s(%s)", regexp.QuoteMeta(raw), constraint)
		}
		reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
		reverse.WriteString("%s")

		varsN = append(varsN, name)
		if matcher == nil {
			vr, err := regexp.Compile("^(?:" + constraint + ")$")
			if err != nil {
				return nil, &InvalidPatternError{
					Template: tpl,
					Reason:   fmt.Sprintf("invalid constraint for placeholder %q", name),
					Cause:    err,
				}
			}
			matcher = vr
		}
		varsR = append(varsR, matcher)
	}

	// Literal text after the last placeholder.
	raw := tpl[end:]
	matchExpr.WriteString(regexp.QuoteMeta(raw))
	reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
	matchExpr.WriteByte('$')

	re, err := regexp.Compile(matchExpr.String())
	if err != nil {
		return nil, &InvalidPatternError{Template: tpl, Reason: "uncompilable match expression", Cause: err}
	}

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, &InvalidPatternError{Template: tpl, Reason: err.Error()}
	}

	return &pattern{
		template: tpl,
		regexp:   re,
		reverse:  reverse.String(),
		varsN:    varsN,
		varsR:    varsR,
		defaults: defaults,
	}, nil
}

// match reports whether path matches the template structurally and
// returns the percent-decoded placeholder values. Submatch indices
// distinguish an absent optional segment (the default fills in) from a
// genuinely-matched empty capture.
func (p *pattern) match(path string) (map[string]string, bool) {
	idx := p.regexp.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, false
	}
	if len(p.varsN) == 0 {
		return nil, true
	}
	vars := make(map[string]string, len(p.varsN))
	for i, name := range p.varsN {
		start, end := idx[2*(i+1)], idx[2*(i+1)+1]
		if start < 0 {
			vars[name] = p.defaults[name]
			continue
		}
		val := path[start:end]
		if decoded, err := url.PathUnescape(val); err == nil {
			val = decoded
		}
		vars[name] = val
	}
	return vars, true
}

// buildPath renders the reverse template with the given values. Each
// value is validated against its constraint and percent-encoded once.
// consume is called for every placeholder name that was filled from
// values rather than from a default.
func (p *pattern) buildPath(routeName string, values map[string]string, consume func(name string)) (string, error) {
	args := make([]interface{}, len(p.varsN))
	for i, name := range p.varsN {
		v, ok := values[name]
		if ok {
			consume(name)
		} else if v, ok = p.defaults[name]; !ok {
			return "", &MissingParameterError{Route: routeName, Param: name}
		}
		if !p.varsR[i].MatchString(v) {
			return "", fmt.Errorf("routing: route %q parameter %q value %q does not satisfy constraint %q",
				routeName, name, v, p.varsR[i].String())
		}
		args[i] = url.PathEscape(v)
	}
	return fmt.Sprintf(p.reverse, args...), nil
}

// braceIndices returns the start and end+1 indices of each top-level
// {...} pair in s. Returns an error if braces are unbalanced.
func braceIndices(s string) ([]int, error) {
	var (
		idxs  []int
		level int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			if level++; level == 1 {
				idxs = append(idxs, i)
			}
		case '}':
			if level--; level == 0 {
				idxs = append(idxs, i+1)
			} else if level < 0 {
				return nil, fmt.Errorf("unbalanced braces in %q", s)
			}
		}
	}
	if level != 0 {
		return nil, fmt.Errorf("unbalanced braces in %q", s)
	}
	return idxs, nil
}

// checkDuplicateVars returns an error if any placeholder name repeats.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("duplicated placeholder %q", v)
		}
		seen[v] = true
	}
	return nil
}
