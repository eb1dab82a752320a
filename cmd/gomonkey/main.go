/*
File   : gomonkey/cmd/gomonkey/main.go

Package main is the entry point for the gomonkey interpreter. It
provides three modes of operation:
 1. REPL mode (default): interactive Read-Eval-Print Loop
 2. File mode: execute a gomonkey source file given as the first argument
 3. Server mode: accept TCP connections, each driving its own REPL
    session over the connection

The interpreter uses the token/lexer -> ast/parser -> eval pipeline
wired up through the interp facade.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/gomonkey/gomonkey/interp"
	"github.com/gomonkey/gomonkey/object"
	"github.com/gomonkey/gomonkey/repl"
)

// VERSION is the current version of the gomonkey interpreter.
var VERSION = "v1.0.0"

// AUTHOR is shown in the banner and --version output.
var AUTHOR = "gomonkey contributors"

// LICENSE is the software license shown alongside the banner.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "monkey >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ____  ___   __  __  ___  _  _  _  _______  __
  / ___|/ _ \ |  \/  |/ _ \| \| |/ |/ / ____| \ \
 | |  _| | | || |\/| | | | |  ' /| ' /|  _|    \ \
 | |_| | |_| || |  | | |_| | . \ | . \| |___   / /
  \____|\___/ |_|  |_|\___/|_|\_\|_|\_\_____| /_/
`

// LINE is the separator used for visual formatting around the banner.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main determines the operating mode from the command-line arguments.
//
// Usage:
//
//	gomonkey                  - start in REPL (interactive) mode
//	gomonkey <filename>       - execute the specified gomonkey source file
//	gomonkey server <port>    - start a REPL server on the given TCP port
//	gomonkey --help           - display help information
//	gomonkey --version        - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: gomonkey server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
	} else {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

func showHelp() {
	cyanColor.Println("gomonkey - An interpreter for the Monkey language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomonkey                  Start interactive REPL mode")
	yellowColor.Println("  gomonkey <path-to-file>    Execute a gomonkey file (.monkey)")
	yellowColor.Println("  gomonkey server <port>     Start REPL server on the specified port")
	yellowColor.Println("  gomonkey --help            Display this help message")
	yellowColor.Println("  gomonkey --version         Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                      Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  gomonkey                  # Start REPL")
	yellowColor.Println("  gomonkey examples/fib.monkey")
	yellowColor.Println("  gomonkey server 8080      # Start REPL server on port 8080")
}

func showVersion() {
	cyanColor.Println("gomonkey - An interpreter for the Monkey language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a gomonkey source file.
func runFile(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(fileContent))
}

// startServer listens on port and hands each accepted connection its own
// REPL session, reading and writing directly over the socket.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("gomonkey REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

// handleClient drives one REPL session per connection, each with its own
// Interpreter and Environment so clients never see each other's bindings.
func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates source, recovering from any
// evaluator panic and reporting it the same way a parse or runtime error
// is reported.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	it := interp.New()
	defer it.Close()

	program, errs := it.Parse(source)
	if len(errs) != 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := it.NewEnvironment()
	result := it.Evaluate(program, env)

	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
}
