// Package catalog implements the engine builtin/global tables: immutable,
// process-lifetime data keyed by lowercase name, each entry annotated
// with a per-target 16-bit availability index.
//
// Entries are populated from an external YAML definition document at
// Load time, so the catalog can be extended or swapped without touching
// the compiler.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/haloscript/hsc/internal/target"
	"github.com/haloscript/hsc/internal/types"
)

// Param is one catalog function's declared parameter.
type Param struct {
	Type           types.T
	Many           bool // last-repeatable ("variadic tail")
	Optional       bool // tail-optional
	AllowUppercase bool // preserve case when parsing this parameter's literal
}

// Function is one engine builtin's catalog entry.
type Function struct {
	Name              string
	Return            types.T
	Params            []Param
	NumberPassthrough bool
	PassthroughLast   bool
	Inequality        bool
	// Availability maps a target to its 16-bit opcode index. A target
	// absent from this map means the function does not exist there.
	Availability map[target.Target]uint16
	// DeprecatedSince lists targets under which this function still works
	// but is deprecated and should raise a warning when called.
	DeprecatedSince map[target.Target]bool
}

// MinArity is the fewest arguments a call may supply: the position of the
// first optional parameter, or the total parameter count if none are
// optional.
func (f *Function) MinArity() int {
	for i, p := range f.Params {
		if p.Optional {
			return i
		}
	}
	return len(f.Params)
}

// MaxArity reports the most arguments a call may supply, and whether there
// is no upper bound (the last parameter is "many").
func (f *Function) MaxArity() (max int, unbounded bool) {
	if n := len(f.Params); n > 0 && f.Params[n-1].Many {
		return 0, true
	}
	return len(f.Params), false
}

// ParamAt returns the declared parameter for argument index i: the i-th
// parameter, or the last parameter if it is "many" and i is past the end,
// or ok=false if i is out of bounds entirely.
func (f *Function) ParamAt(i int) (Param, bool) {
	if i < len(f.Params) {
		return f.Params[i], true
	}
	if n := len(f.Params); n > 0 && f.Params[n-1].Many {
		return f.Params[n-1], true
	}
	return Param{}, false
}

// Global is one engine global's catalog entry.
type Global struct {
	Name         string
	Type         types.T
	Availability map[target.Target]uint16
}

// Catalog is the immutable, shared table of engine builtins and globals.
type Catalog struct {
	functions map[string]*Function
	globals   map[string]*Global
}

// LookupFunction resolves a lowercase name to its catalog entry.
func (c *Catalog) LookupFunction(name string) (*Function, bool) {
	f, ok := c.functions[name]
	return f, ok
}

// LookupGlobal resolves a lowercase name to its catalog entry.
func (c *Catalog) LookupGlobal(name string) (*Global, bool) {
	g, ok := c.globals[name]
	return g, ok
}

// Visible reports whether the function is available under target t.
func (f *Function) Visible(t target.Target) bool {
	_, ok := f.Availability[t]
	return ok
}

// Visible reports whether the global is available under target t.
func (g *Global) Visible(t target.Target) bool {
	_, ok := g.Availability[t]
	return ok
}

// AvailabilityIndex returns the opcode index for a function under a
// target.
func (f *Function) AvailabilityIndex(t target.Target) (uint16, bool) {
	v, ok := f.Availability[t]
	return v, ok
}

// VisibleFunctions returns every function visible under t, keyed by name.
func (c *Catalog) VisibleFunctions(t target.Target) map[string]*Function {
	out := make(map[string]*Function)
	for name, f := range c.functions {
		if f.Visible(t) {
			out[name] = f
		}
	}
	return out
}

// VisibleGlobals returns every global visible under t, keyed by name.
func (c *Catalog) VisibleGlobals(t target.Target) map[string]*Global {
	out := make(map[string]*Global)
	for name, g := range c.globals {
		if g.Visible(t) {
			out[name] = g
		}
	}
	return out
}

// --- YAML definition document ---

type yamlDoc struct {
	Functions []yamlFunction `yaml:"functions"`
	Globals   []yamlGlobal   `yaml:"globals"`
}

type yamlParam struct {
	Type     string `yaml:"type"`
	Many     bool   `yaml:"many,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	Upper    bool   `yaml:"allow_uppercase,omitempty"`
}

type yamlFunction struct {
	Name              string            `yaml:"name"`
	Return            string            `yaml:"return"`
	Params            []yamlParam       `yaml:"params"`
	NumberPassthrough bool              `yaml:"number_passthrough,omitempty"`
	PassthroughLast   bool              `yaml:"passthrough_last,omitempty"`
	Inequality        bool              `yaml:"inequality,omitempty"`
	Availability      map[string]int    `yaml:"availability"`
	DeprecatedSince   []string          `yaml:"deprecated_since,omitempty"`
}

type yamlGlobal struct {
	Name         string         `yaml:"name"`
	Type         string         `yaml:"type"`
	Availability map[string]int `yaml:"availability"`
}

// Load parses an external YAML catalog definition document.
func Load(doc []byte) (*Catalog, error) {
	var parsed yamlDoc
	if err := yaml.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("catalog: parse definition document: %w", err)
	}

	c := &Catalog{
		functions: make(map[string]*Function, len(parsed.Functions)),
		globals:   make(map[string]*Global, len(parsed.Globals)),
	}

	for _, yf := range parsed.Functions {
		fn, err := convertFunction(yf)
		if err != nil {
			return nil, err
		}
		c.functions[fn.Name] = fn
	}
	for _, yg := range parsed.Globals {
		gl, err := convertGlobal(yg)
		if err != nil {
			return nil, err
		}
		c.globals[gl.Name] = gl
	}
	return c, nil
}

func convertFunction(yf yamlFunction) (*Function, error) {
	ret, ok := types.Parse(yf.Return)
	if !ok {
		return nil, fmt.Errorf("catalog: function %q: unknown return type %q", yf.Name, yf.Return)
	}
	params := make([]Param, 0, len(yf.Params))
	for i, yp := range yf.Params {
		pt, ok := types.Parse(yp.Type)
		if !ok {
			return nil, fmt.Errorf("catalog: function %q: unknown parameter %d type %q", yf.Name, i, yp.Type)
		}
		params = append(params, Param{Type: pt, Many: yp.Many, Optional: yp.Optional, AllowUppercase: yp.Upper})
	}
	avail, err := convertAvailability(yf.Availability)
	if err != nil {
		return nil, fmt.Errorf("catalog: function %q: %w", yf.Name, err)
	}
	var deprecated map[target.Target]bool
	if len(yf.DeprecatedSince) > 0 {
		deprecated = make(map[target.Target]bool, len(yf.DeprecatedSince))
		for _, name := range yf.DeprecatedSince {
			t, ok := target.Parse(name)
			if !ok {
				return nil, fmt.Errorf("catalog: function %q: unknown deprecated_since target %q", yf.Name, name)
			}
			deprecated[t] = true
		}
	}
	return &Function{
		Name:              yf.Name,
		Return:            ret,
		Params:            params,
		NumberPassthrough: yf.NumberPassthrough,
		PassthroughLast:   yf.PassthroughLast,
		Inequality:        yf.Inequality,
		Availability:      avail,
		DeprecatedSince:   deprecated,
	}, nil
}

func convertGlobal(yg yamlGlobal) (*Global, error) {
	t, ok := types.Parse(yg.Type)
	if !ok {
		return nil, fmt.Errorf("catalog: global %q: unknown type %q", yg.Name, yg.Type)
	}
	avail, err := convertAvailability(yg.Availability)
	if err != nil {
		return nil, fmt.Errorf("catalog: global %q: %w", yg.Name, err)
	}
	return &Global{Name: yg.Name, Type: t, Availability: avail}, nil
}

func convertAvailability(in map[string]int) (map[target.Target]uint16, error) {
	out := make(map[target.Target]uint16, len(in))
	for name, idx := range in {
		t, ok := target.Parse(name)
		if !ok {
			return nil, fmt.Errorf("unknown target %q", name)
		}
		if idx < 0 || idx > 0xFFFF {
			return nil, fmt.Errorf("availability index %d out of range for target %q", idx, name)
		}
		out[t] = uint16(idx)
	}
	return out, nil
}

//go:embed builtins.yaml
var defaultDefinitions []byte

// Default loads the catalog bundled with this module: the control-flow
// primitives every target needs (if/begin/set are ordinary catalog
// entries with Passthrough-flavored typing, not hardcoded analyzer
// special cases beyond their name) plus a representative cross-section of
// engine builtins and globals.
func Default() (*Catalog, error) {
	return Load(defaultDefinitions)
}
