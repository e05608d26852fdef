// Package filter compiles and evaluates the CEL expressions accepted by the
// filter fields of List and Search requests, e.g.
//
//	method == "/dbconsole.v1.AuthService/Login" && create_time >= "2024-01-01T00:00:00Z"
//	engine in ["MYSQL", "POSTGRES"] || title.startsWith("prod")
//	!(labels.tenant == "acme") && has(labels.region)
//
// Fields are message field paths in proto or JSON form and are declared as
// dyn variables. Unset fields compare as the other operand's zero value and
// RFC 3339 strings compare as times. Only the has() macro is enabled.
package filter

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/ast"

	"github.com/idot-digital/dbconsole/internal/wire"
)

var baseEnv = mustEnv(cel.ClearMacros(), cel.Macros(cel.HasMacro))

func mustEnv(opts ...cel.EnvOption) *cel.Env {
	env, err := cel.NewEnv(opts...)
	if err != nil {
		panic(err)
	}
	return env
}

// Expr is a compiled filter. A nil *Expr matches everything.
type Expr struct {
	prg    cel.Program
	roots  []string
	fields []string
}

// Parse compiles a filter. An empty string yields a nil expression.
func Parse(s string) (*Expr, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parsed, iss := baseEnv.Parse(s)
	if iss.Err() != nil {
		return nil, iss.Err()
	}

	c := &collector{seen: map[string]bool{}, rootSeen: map[string]bool{}}
	c.walk(parsed.NativeRep().Expr())

	vars := make([]cel.EnvOption, 0, len(c.roots))
	for _, r := range c.roots {
		vars = append(vars, cel.Variable(r, cel.DynType))
	}
	env, err := baseEnv.Extend(vars...)
	if err != nil {
		return nil, err
	}
	checked, iss := env.Compile(s)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	if out := checked.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("filter must be a condition, got %s", cel.FormatCELType(out))
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, err
	}
	return &Expr{prg: prg, roots: c.roots, fields: c.fields}, nil
}

// Fields returns the field paths the expression reads.
func (e *Expr) Fields() []string {
	if e == nil {
		return nil
	}
	return e.fields
}

// Match evaluates the expression against a message.
func (e *Expr) Match(m any) (bool, error) {
	if e == nil || e.prg == nil {
		return true, nil
	}
	raw, err := wire.MarshalJSON(m)
	if err != nil {
		return false, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false, err
	}

	vars := make(map[string]any, len(e.roots))
	for _, r := range e.roots {
		vars[r] = object(doc).Get(stringVal(r))
	}
	out, _, err := e.prg.Eval(vars)
	if err != nil {
		return false, err
	}
	ok, isBool := out.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("filter evaluated to %v, not a bool", out.Value())
	}
	return ok, nil
}

// Validate checks every field path with known, typically wire.HasField
// bound to the message type.
func (e *Expr) Validate(known func(path string) bool) error {
	for _, f := range e.Fields() {
		if !known(f) {
			return fmt.Errorf("unknown field %q", f)
		}
	}
	return nil
}

// collector gathers the identifier roots and the dotted field paths of a
// parsed expression.
type collector struct {
	roots    []string
	fields   []string
	seen     map[string]bool
	rootSeen map[string]bool
}

func (c *collector) walk(e ast.Expr) {
	switch e.Kind() {
	case ast.IdentKind, ast.SelectKind:
		if path, root, ok := selectPath(e); ok {
			c.add(path, root)
			return
		}
		if e.Kind() == ast.SelectKind {
			c.walk(e.AsSelect().Operand())
		}
	case ast.CallKind:
		call := e.AsCall()
		if call.IsMemberFunction() {
			c.walk(call.Target())
		}
		for _, arg := range call.Args() {
			c.walk(arg)
		}
	case ast.ListKind:
		for _, el := range e.AsList().Elements() {
			c.walk(el)
		}
	case ast.MapKind:
		for _, entry := range e.AsMap().Entries() {
			c.walk(entry.AsMapEntry().Key())
			c.walk(entry.AsMapEntry().Value())
		}
	}
}

func (c *collector) add(path, root string) {
	if !c.seen[path] {
		c.seen[path] = true
		c.fields = append(c.fields, path)
	}
	if !c.rootSeen[root] {
		c.rootSeen[root] = true
		c.roots = append(c.roots, root)
	}
}

// selectPath turns a chain of field selections on an identifier into its
// dotted path.
func selectPath(e ast.Expr) (path, root string, ok bool) {
	switch e.Kind() {
	case ast.IdentKind:
		return e.AsIdent(), e.AsIdent(), true
	case ast.SelectKind:
		sel := e.AsSelect()
		parent, root, ok := selectPath(sel.Operand())
		if !ok {
			return "", "", false
		}
		return parent + "." + sel.FieldName(), root, true
	}
	return "", "", false
}
