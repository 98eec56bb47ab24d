/*
File    : lumen/cmd/lumen/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var redColor = color.New(color.FgRed)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Lumen source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}

	eval.SetWriter(os.Stdout)
	env := environment.NewEnvironment()
	result := eval.Eval(program, env)

	if result != nil && result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	return nil
}
