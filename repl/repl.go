/*
File    : lumen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for Lumen. The REPL
keeps a single Environment alive for the whole session, so a `let` on
one line is visible to every line after it, and reports lex/parse/eval
failures without ever exiting the loop over them.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session; none
// of it affects evaluation semantics.
type Repl struct {
	Banner   string
	Version  string
	Author   string
	Line     string
	Prompt   string
	NoBanner bool
}

// New creates a Repl with the given banner and prompt.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Lumen!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'q' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-eval-print loop until the user quits with
// `q`, an EOF (Ctrl+D), or a readline error.
func (r *Repl) Start(writer io.Writer) {
	if !r.NoBanner {
		r.PrintBannerInfo(writer)
	}

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	eval.SetWriter(writer)
	env := environment.NewEnvironment()

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
		if line == "q" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery lexes, parses, and evaluates one line of input,
// printing either the result or an error, and never letting a panic
// (e.g. deep recursion exhausting the call stack) take the REPL down
// with it.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "ERROR: %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil || result == object.NULL {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
