/*
File    : jmespath/cmd/jmesquery/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for jmesquery, a JMESPath command-line
tool. It provides two modes of operation:
1. REPL Mode (default): evaluate expressions interactively against one
   loaded document.
2. One-shot Mode: jmesquery <expression> [file] evaluates a single
   expression and exits.

Grounded on the teacher's main/main.go two-mode os.Args dispatch; the
teacher's "server" (TCP REPL) mode has no SPEC_FULL.md component — a
JMESPath query tool has no notion of a network-exposed session — and is
dropped (see DESIGN.md).
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// VERSION is the jmesquery tool version.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the tool's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "jmespath >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
     ██ ███    ███ ███████ ███████ ██████   █████  ████████ ██   ██
     ██ ████  ████ ██      ██      ██   ██ ██   ██    ██    ██   ██
     ██ ██ ████ ██ █████   ███████ ██████  ███████    ██    ███████
     ██ ██  ██  ██ ██           ██ ██      ██   ██    ██    ██   ██
     ██ ██      ██ ███████ ███████ ██      ██   ██    ██    ██   ██
`

// LINE is a separator line used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches between one-shot mode (jmesquery <expr> [file]), REPL
// mode (jmesquery with no arguments, document read from stdin), and the
// --help/--version flags.
func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		}
	}

	switch len(args) {
	case 0:
		doc := loadDocument("")
		startRepl(doc)
	case 1:
		doc := loadDocument("")
		runOneShot(args[0], doc)
	default:
		doc := loadDocument(args[1])
		runOneShot(args[0], doc)
	}
}

// loadDocument reads and JSON-decodes the document at path, or stdin if
// path is empty. Grounded on the teacher's main/main.go file-reading
// idiom (os.ReadFile + error-and-exit), using encoding/json per
// SPEC_FULL.md §7's "CLI document loading" entry.
func loadDocument(path string) interface{} {
	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		redColor.Fprintf(os.Stderr, "[DOCUMENT ERROR] could not read document: %v\n", err)
		os.Exit(1)
	}
	if len(raw) == 0 {
		return nil
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		redColor.Fprintf(os.Stderr, "[DOCUMENT ERROR] invalid JSON document: %v\n", err)
		os.Exit(1)
	}
	return doc
}

// runOneShot evaluates expr against doc and prints the result, exiting
// non-zero on any parse or runtime error.
func runOneShot(expr string, doc interface{}) {
	result, err := evaluate(expr, doc)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, result)
}

func showHelp() {
	cyanColor.Println("jmesquery - a JMESPath command-line query tool")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  jmesquery                      Start interactive REPL reading a document from stdin")
	yellowColor.Println("  jmesquery <expr>                Evaluate <expr> against a document on stdin")
	yellowColor.Println("  jmesquery <expr> <file.json>    Evaluate <expr> against <file.json>")
	yellowColor.Println("  jmesquery --help                Display this help message")
	yellowColor.Println("  jmesquery --version             Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                           Exit the REPL")
}

func showVersion() {
	cyanColor.Println("jmesquery - a JMESPath command-line query tool")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

func printResult(w io.Writer, result interface{}) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "%v\n", result)
		return
	}
	yellowColor.Fprintf(w, "%s\n", string(b))
}
