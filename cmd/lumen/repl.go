/*
File    : lumen/cmd/lumen/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/akashmaji946/lumen/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		runRepl(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command) {
	noBanner, _ := cmd.Flags().GetBool("no-banner")

	r := repl.New(banner, version, author, line, prompt)
	r.NoBanner = noBanner
	r.Start(os.Stdout)
}
