/*
File   : gomonkey/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop:
readline-backed line editing and history, colored diagnostics, and a
banner/version/author header printed at session start.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomonkey/gomonkey/interp"
	"github.com/gomonkey/gomonkey/object"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the display strings shown at session start. It carries
// no evaluation state itself: Start creates a fresh Interpreter and
// Environment for each session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the banner, version/author/license line, and
// usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to gomonkey!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop over reader/writer until the user exits or
// EOF is reached. Every session gets its own Interpreter and a single
// top-level Environment that persists across lines, so `let` bindings
// from one line are visible to later ones.
//
// reader is accepted for interface symmetry with a plain io.Reader-based
// loop but is not wired into readline itself: readline always drives
// the process's controlling terminal. Writer output (banner,
// diagnostics, results) does go to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New()
	defer it.Close()
	env := it.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, it, env)
	}
}

// executeWithRecovery parses and evaluates one line, recovering from
// any evaluator panic so a single bad line never ends the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, it *interp.Interpreter, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, errs := it.Parse(line)
	if len(errs) != 0 {
		printParserErrors(writer, errs)
		return
	}

	result := it.Evaluate(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}

func printParserErrors(writer io.Writer, errors []string) {
	for _, msg := range errors {
		redColor.Fprintf(writer, "\t%s\n", msg)
	}
}
