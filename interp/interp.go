/*
File   : gomonkey/interp/interp.go

Package interp is the facade over the interpreter core: a constructor
for interpreter state, lexer/parser construction from source text, a
top-level Evaluate operation, and lifecycle operations for the
resulting objects. It holds nothing the token/object packages don't
already hold as package-level state (the keyword table and the three
interned singletons are process-wide by construction); Interpreter
exists so callers have a single handle whose lifetime they can reason
about.
*/
package interp

import (
	"github.com/gomonkey/gomonkey/ast"
	"github.com/gomonkey/gomonkey/eval"
	"github.com/gomonkey/gomonkey/lexer"
	"github.com/gomonkey/gomonkey/object"
	"github.com/gomonkey/gomonkey/parser"
)

// Interpreter is a handle to one interpreter run. It carries no mutable
// state of its own today (the keyword table in package token and the
// singletons in package object are immutable for the process's
// lifetime), but gives the REPL/CLI/server a single value with a
// New/Close lifecycle, and a natural place to hang future per-run
// state.
type Interpreter struct {
	closed bool
}

// New creates a fresh interpreter handle.
func New() *Interpreter {
	return &Interpreter{}
}

// Close releases the interpreter handle. It is idempotent and safe to
// call multiple times; it never touches the interned singletons, which
// outlive any single Interpreter value for the life of the process.
func (i *Interpreter) Close() {
	i.closed = true
}

// Lex builds a lexer over source. Exposed mainly for testing and tools
// that want raw tokens without paying for a full parse.
func (i *Interpreter) Lex(source string) *lexer.Lexer {
	return lexer.New(source)
}

// Parse lexes and parses source in one step, returning the resulting
// Program (always non-nil) and any accumulated parser error messages.
func (i *Interpreter) Parse(source string) (*ast.Program, []string) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	return program, p.Errors()
}

// Evaluate walks program against env and returns the resulting object.
func (i *Interpreter) Evaluate(program *ast.Program, env *object.Environment) object.Object {
	return eval.Eval(program, env)
}

// NewEnvironment creates a fresh top-level environment for use with
// Evaluate. There is no matching destroy operation: Go's garbage
// collector reclaims an *object.Environment, along with the values it
// owns, once nothing references it.
func (i *Interpreter) NewEnvironment() *object.Environment {
	return object.NewEnvironment()
}
