package govsn

import "strconv"

// Path is a dotted field path such as pages[0].regions[1].items[2].properties.text.
// The zero value is the document root. Path values are immutable, so a walker
// pushes a segment by deriving a child and pops it by returning to the parent.
type Path struct {
	s string
}

// Root returns the document root path.
func Root() Path { return Path{} }

// ParsePath wraps an already rendered path.
func ParsePath(s string) Path { return Path{s: s} }

// Field appends a named segment.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	if p.s == "" {
		return Path{s: name}
	}
	return Path{s: p.s + "." + name}
}

// Index appends an array index to the last segment.
func (p Path) Index(i int) Path {
	return Path{s: p.s + "[" + strconv.Itoa(i) + "]"}
}

// String renders the path.
func (p Path) String() string { return p.s }

// IsRoot reports whether p has no segments.
func (p Path) IsRoot() bool { return p.s == "" }

// Error creates an error-level Diagnostic at p. kv are alternating parameter
// names and values.
func (p Path) Error(code string, kv ...string) Diagnostic {
	return p.diag(code, LevelError, kv)
}

// Warning creates a warning-level Diagnostic at p.
func (p Path) Warning(code string, kv ...string) Diagnostic {
	return p.diag(code, LevelWarning, kv)
}

func (p Path) diag(code string, lvl Level, kv []string) Diagnostic {
	d := Diagnostic{Field: p.s, Code: code, Level: lvl}
	if len(kv) > 1 {
		d.Params = make(map[string]string, len(kv)/2+1)
		for i := 0; i+1 < len(kv); i += 2 {
			d.Params[kv[i]] = kv[i+1]
		}
	}
	if p.s != "" {
		if d.Params == nil {
			d.Params = map[string]string{}
		}
		d.Params["field"] = p.s
	}
	d.Message = code
	return d
}
