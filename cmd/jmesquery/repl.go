/*
File    : jmespath/cmd/jmesquery/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// REPL loop for jmesquery: evaluate JMESPath expressions interactively
// against one document loaded at startup. Grounded on the teacher's
// repl/repl.go (banner printing, readline-backed line editing and
// history, colorized result/error output, ".exit"/".exit"-style quit
// command), adapted from go-mix's statement-evaluating loop to a
// query-evaluating one: there is no persistent scope to maintain
// between lines, since every JMESPath search is independent.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/jmespath"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
)

// printBanner displays the welcome banner and usage instructions,
// mirroring the teacher's Repl.PrintBannerInfo layout.
func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", LINE)
	greenColor.Fprintf(w, "%s\n", BANNER)
	blueColor.Fprintf(w, "%s\n", LINE)
	yellowColor.Fprintln(w, "Version: "+VERSION+" | Author: "+AUTHOR+" | License: "+LICENCE)
	blueColor.Fprintf(w, "%s\n", LINE)
	cyanColor.Fprintf(w, "%s\n", "Type a JMESPath expression and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate expression history")
	blueColor.Fprintf(w, "%s\n", LINE)
}

// startRepl runs the interactive loop, evaluating every non-empty line
// against doc until '.exit' or EOF (Ctrl+D).
func startRepl(doc interface{}) {
	printBanner(os.Stdout)

	rl, err := readline.New(PROMPT)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[REPL ERROR] could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			os.Stdout.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			os.Stdout.Write([]byte("Good bye!\n"))
			return
		}
		rl.SaveHistory(line)

		evalWithRecovery(line, doc)
	}
}

// evalWithRecovery parses and searches line against doc, recovering
// from any panic in the underlying engine so the REPL stays up — the
// same robustness stance as the teacher's executeWithRecovery, though
// a well-formed Interpret call should never itself panic per spec.md
// §7's "errors propagate, never partial results" policy.
func evalWithRecovery(line string, doc interface{}) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(os.Stderr, "[INTERNAL ERROR] %v\n", r)
		}
	}()

	result, err := evaluate(line, doc)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return
	}
	printResult(os.Stdout, result)
}

// evaluate parses and searches expr against doc using the default
// function registry.
func evaluate(expr string, doc interface{}) (interface{}, error) {
	return jmespath.Search(expr, doc)
}
