/*
File    : lumen/cmd/lumen/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	prompt  = "lumen >>> "
	line    = "----------------------------------------------------------------"
)

const banner = `
 ██╗     ██╗   ██╗███╗   ███╗███████╗███╗   ██╗
 ██║     ██║   ██║████╗ ████║██╔════╝████╗  ██║
 ██║     ██║   ██║██╔████╔██║█████╗  ██╔██╗ ██║
 ██║     ██║   ██║██║╚██╔╝██║██╔══╝  ██║╚██╗██║
 ███████╗╚██████╔╝██║ ╚═╝ ██║███████╗██║ ╚████║
 ╚══════╝ ╚═════╝ ╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝
`

var cyanColor = color.New(color.FgCyan)

var rootCmd = &cobra.Command{
	Use:           "lumen",
	Short:         "Lumen interpreter",
	Long:          cyanColor.Sprint("Lumen") + " - a small, closure-capable interpreted language.",
	SilenceUsage:  true,
	SilenceErrors: false,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("no-banner", false, "Hide the startup banner")
}

// Execute runs the root command, returning the first error encountered.
func Execute() error {
	return rootCmd.Execute()
}
